package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/middleware"
	"github.com/ferdiebergado/notekit/internal/pkg/logging"
	"github.com/ferdiebergado/notekit/internal/platform/db"
)

const (
	DefaultEnvFile    = ".env"
	DefaultConfigFile = "config.json"
)

// Options locates the files Run reads at startup.
type Options struct {
	// EnvFile is loaded outside production. Empty skips it.
	EnvFile    string
	ConfigFile string
}

// Middlewares returns the global middleware chain in the order it wraps every request.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.Server.AllowedOrigin),
		middleware.ContextGuard,
		middleware.CheckContentType,
	}
}

// Run loads the configuration, connects to the database and serves the API until ctx is done.
func Run(ctx context.Context, opts Options) error {
	slog.Info("Initializing...", "config_file", opts.ConfigFile)

	if opts.EnvFile != "" && os.Getenv("ENV") != "production" {
		if err := env.Load(opts.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	cfg, err := config.Load(cmp.Or(opts.ConfigFile, DefaultConfigFile))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	dbConn, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider, err := NewProvider(cfg, dbConn)
	if err != nil {
		return err
	}

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
