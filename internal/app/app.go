package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/notekit/internal/auth"
	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/note"
	"github.com/ferdiebergado/notekit/internal/user"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	p := a.provider
	maxBodySize := a.config.Server.MaxBodyBytes

	userModule := user.NewModule(p.DB)
	mountUserRoutes(p.Router, userModule.Handler(), p.Tokens)

	authModule := auth.NewModule(&auth.Provider{
		Hasher:  p.Hasher,
		Tokens:  p.Tokens,
		UserSvc: userModule.Service(),
		TXMgr:   p.TxMgr,
	})
	mountAuthRoutes(p.Router, authModule.Handler(), p.Validator, maxBodySize)

	noteModule := note.NewModule(p.DB)
	mountNoteRoutes(p.Router, noteModule.Handler(), p.Validator, p.Tokens, maxBodySize)
}

// Handler returns the fully wired router.
func (a *App) Handler() http.Handler {
	return a.provider.Router
}

// Addr is the address the server listens on.
func (a *App) Addr() string {
	return a.server.Addr
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// New wires the middlewares and routes of the API. Middlewares run in the given order.
func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	a.setupRoutes()

	return a
}
