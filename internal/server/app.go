// Package server wires the application together and runs the HTTP server:
// configuration, storage, auth services, routing and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/config"
	"github.com/scholaredit/scholaredit/internal/server/handlers"
	"github.com/scholaredit/scholaredit/internal/server/storage/sqlite"
)

// shutdownTimeout время на дослуживание открытых запросов при остановке
const shutdownTimeout = 10 * time.Second

// App holds the assembled server and its dependencies.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	router  http.Handler
}

// NewApp validates the configuration and wires storage, auth and handlers.
// Fails fast when the JWT secret is missing: the server must never run in a
// state where it would issue unsigned tokens.
func NewApp(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to init token service: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	gate := auth.NewGate(tokens)

	authHandler := handlers.NewAuthHandler(logger, store, tokens)
	catalogHandler := handlers.NewCatalogHandler(logger, store, store, store, store)
	requestsHandler := handlers.NewRequestsHandler(logger, store, store)
	healthHandler := handlers.NewHealthHandler(logger, version)

	router := NewRouter(logger, gate, authHandler, catalogHandler, requestsHandler, healthHandler)

	return &App{
		cfg:     cfg,
		logger:  logger,
		storage: store,
		router:  router,
	}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled or
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "address", a.cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		// ListenAndServe упал сам (например, занят порт)
		a.closeStorage()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.closeStorage()
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("server error", "error", err)
	}

	a.closeStorage()
	a.logger.Info("server stopped")

	return nil
}

func (a *App) closeStorage() {
	if err := a.storage.Close(); err != nil {
		a.logger.Error("failed to close storage", "error", err)
	}
}
