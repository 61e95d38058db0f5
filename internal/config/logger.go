package config

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger sets up the default slog logger from LOG_LEVEL (debug, info,
// warn, error) and LOG_FORMAT (json, text).
func InitLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(GetEnv("LOG_LEVEL", "info"))}

	var handler slog.Handler
	switch strings.ToLower(GetEnv("LOG_FORMAT", "text")) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
