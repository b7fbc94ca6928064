// Package apiapp wires config, upstream clients, the aggregation service,
// and the HTTP surface into one runnable server.
package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dn1t/dutlife-api/internal/config"
	"github.com/dn1t/dutlife-api/internal/entry/graphql"
	"github.com/dn1t/dutlife-api/internal/entry/session"
	"github.com/dn1t/dutlife-api/internal/infra/httpclient"
	searchsvc "github.com/dn1t/dutlife-api/internal/services/search"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	upstreamClient := httpclient.New(cfg.Entry.RequestTimeout)

	tokenStore := session.NewStore()
	authenticator := session.NewAuthenticator(tokenStore, upstreamClient, session.Config{
		BaseURL:    cfg.Entry.BaseURL,
		Username:   cfg.Entry.Username,
		Password:   cfg.Entry.Password,
		SessionTTL: cfg.Entry.SessionTTL,
	}, log)

	gqlClient := graphql.NewClient(upstreamClient, cfg.Entry.BaseURL, authenticator, log)
	searchService := searchsvc.NewService(gqlClient, cfg.Entry.BaseURL, log)

	// Warm the session so the first real request doesn't pay for sign-in.
	// Failure here is fine; the store stays empty and refresh retries later.
	authenticator.Acquire(ctx)

	RegisterRoutes(r, Dependencies{
		SearchService: searchService,
		Logger:        log,
		Config:        cfg,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
