package apiapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dn1t/dutlife-api/internal/config"
	searchsvc "github.com/dn1t/dutlife-api/internal/services/search"
	httperrors "github.com/dn1t/dutlife-api/internal/transport/http/errors"
	"github.com/dn1t/dutlife-api/internal/transport/http/handlers"
)

type Dependencies struct {
	SearchService *searchsvc.Service
	Logger        *zap.Logger
	Config        config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	searchHandler := handlers.NewSearchHandler(
		deps.SearchService,
		deps.Config.Search.DefaultDisplay,
		deps.Config.Search.MaxDisplay,
		deps.Logger,
	)
	userHandler := handlers.NewUserHandler(deps.SearchService, deps.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httperrors.Write(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", searchHandler.Handle)
		r.Get("/users/{username}", userHandler.Handle)
	})
}
