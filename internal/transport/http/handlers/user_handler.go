package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dn1t/dutlife-api/internal/pkg/validate"
	searchsvc "github.com/dn1t/dutlife-api/internal/services/search"
	httperrors "github.com/dn1t/dutlife-api/internal/transport/http/errors"
)

type UserHandler struct {
	service *searchsvc.Service
	log     *zap.Logger
}

func NewUserHandler(service *searchsvc.Service, log *zap.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

func (h *UserHandler) Handle(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !validate.Required(username) {
		writeBadRequest(w, "VALIDATION_ERROR", "username is required")
		return
	}

	user, err := h.service.UserInfo(r.Context(), username)
	if err != nil {
		if errors.Is(err, searchsvc.ErrUserNotFound) {
			writeNotFound(w, "USER_NOT_FOUND", "no user with that username")
			return
		}
		h.log.Error("user info failed", zap.String("username", username), zap.Error(err))
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
		return
	}

	httperrors.Write(w, http.StatusOK, mapUser(user))
}
