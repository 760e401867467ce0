package config

import (
	"log/slog"
	"os"
)

const serviceName = "eventboard"

// NewLogger returns the application slog.Logger, configured from GO_ENV and
// LOG_LEVEL. Production gets a JSON handler, everything else a text handler,
// and every record carries a service attribute.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", serviceName)
}

// parseLevel maps a LOG_LEVEL value to a slog.Level, defaulting to info for
// empty or unrecognized values.
func parseLevel(s string) slog.Level {
	switch s {
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
