package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/docbridge/internal/infra/config"
)

const shutdownGrace = 10 * time.Second

// App runs the docbridge HTTP server until its context ends.
type App struct {
	addr   string
	grace  time.Duration
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{
		addr:   cfg.HTTP.Address,
		grace:  shutdownGrace,
		logger: logger.With("component", "bootstrap"),
		server: server,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to the grace period.
// A listen failure is returned immediately.
func (a *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "address", a.addr)
		serveErr <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http on %s: %w", a.addr, err)
	case <-ctx.Done():
	}

	a.logger.Info("draining http server", "grace", a.grace.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.grace)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	<-serveErr
	a.logger.Info("http server stopped")
	return nil
}
