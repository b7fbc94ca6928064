package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/dn1t/dutlife-api/internal/pkg/validate"
	searchsvc "github.com/dn1t/dutlife-api/internal/services/search"
	"github.com/dn1t/dutlife-api/internal/transport/http/dto"
	httperrors "github.com/dn1t/dutlife-api/internal/transport/http/errors"
)

type SearchHandler struct {
	service        *searchsvc.Service
	defaultDisplay int
	maxDisplay     int
	log            *zap.Logger
}

func NewSearchHandler(service *searchsvc.Service, defaultDisplay, maxDisplay int, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service:        service,
		defaultDisplay: defaultDisplay,
		maxDisplay:     maxDisplay,
		log:            log,
	}
}

func (h *SearchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if !validate.Required(query) {
		writeBadRequest(w, "VALIDATION_ERROR", "query parameter is required")
		return
	}

	display := h.defaultDisplay
	if raw := r.URL.Query().Get("display"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !validate.InRange(n, 1, h.maxDisplay) {
			writeBadRequest(w, "VALIDATION_ERROR", "display must be an integer between 1 and "+strconv.Itoa(h.maxDisplay))
			return
		}
		display = n
	}

	result, err := h.service.Search(r.Context(), query, display)
	if err != nil {
		h.log.Error("search failed", zap.String("query", query), zap.Error(err))
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
		return
	}

	users := make([]dto.UserResponse, len(result.Users))
	for i, u := range result.Users {
		users[i] = mapUser(u)
	}

	httperrors.Write(w, http.StatusOK, dto.SearchResponse{
		Users:    users,
		Projects: mapProjectPage(result.Projects),
		Discuss:  mapDiscussPage(result.Discussions),
	})
}
