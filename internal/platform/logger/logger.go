package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger injected throughout the service.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
