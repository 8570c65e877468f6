package app

import (
	"context"
	"net/http"
	"time"

	"github.com/codewithharshjha/micro-services/internal/config"
)

const readHeaderTimeout = 10 * time.Second

// App owns the user-service HTTP server and the infrastructure
// handles it must release on shutdown.
type App struct {
	httpServer *http.Server
	cleanup    func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	router, cleanup, err := setupHTTP(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: &http.Server{
			Addr:              ":" + cfg.AppPort,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		cleanup: cleanup,
	}, nil
}

func (a *App) Run() error {
	return a.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, then releases the database and
// Redis handles.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
