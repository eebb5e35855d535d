// Command server runs the notekit API.
//
// NOTEKIT_CONFIG and NOTEKIT_ENV_FILE override the default config.json and .env paths.
package main

import (
	"cmp"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/notekit/internal/app"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		EnvFile:    cmp.Or(os.Getenv("NOTEKIT_ENV_FILE"), app.DefaultEnvFile),
		ConfigFile: cmp.Or(os.Getenv("NOTEKIT_CONFIG"), app.DefaultConfigFile),
	}

	if err := app.Run(ctx, opts); err != nil {
		slog.Error("notekit stopped.", "reason", err)
		stop()
		os.Exit(1)
	}
	slog.Info("notekit shut down gracefully.")
}
