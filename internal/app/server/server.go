// Package server wires configuration, storage, services and the HTTP API into a running process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api"
	"junebug/internal/app/server/config"
	"junebug/internal/domain/catalog"
	"junebug/internal/infrastructure/storage"
	"junebug/internal/utils/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type App struct {
	config   *config.Config
	log      *slog.Logger
	store    storage.Storage
	services *api.Services
	server   *http.Server
}

// New открывает хранилище и собирает HTTP-сервер. Ничего не слушает до Run.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	services := api.NewServices(store, log)

	if cfg.ResetDB {
		if err := ResetCatalog(ctx, services.Catalog); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	handler, _ := api.New(store, services, log)

	return &App{
		config:   cfg,
		log:      log,
		store:    store,
		services: services,
		server: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// ResetCatalog replaces seeds and tips with the data bundled into the binary.
func ResetCatalog(ctx context.Context, svc catalog.Servicer) error {
	bundle, err := catalog.LoadBundled()
	if err != nil {
		return fmt.Errorf("load bundled catalog: %w", err)
	}
	if err := svc.Reset(ctx, bundle); err != nil {
		return fmt.Errorf("reset catalog: %w", err)
	}
	return nil
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", "address", a.server.Addr, "env", a.config.Env, "storage", a.config.Storage)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.closeStore()
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		a.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.closeStore()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

func (a *App) closeStore() {
	if err := a.store.Close(); err != nil {
		a.log.Error("close storage", logger.Err(err))
	}
}
