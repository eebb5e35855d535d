package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a text logger, or a JSON logger when appEnv is "production".
func NewLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: stringToLogLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

func SetupLogger(appEnv, logLevel string, out io.Writer) {
	slog.SetDefault(NewLogger(appEnv, logLevel, out))
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
