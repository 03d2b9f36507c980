// Package logger builds the structured loggers used across the services.
// Output is one JSON object per line on stdout; set LOG_FORMAT=text for a
// human-readable stream during development.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a logger tagged with the given service name.
func New(service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level()}

	var h slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(h).With("service", service)
}

func level() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
