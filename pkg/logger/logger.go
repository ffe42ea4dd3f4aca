package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

func Init(env string) {
	InitWithLevel(env, "")
}

// InitWithLevel builds the process logger. Production writes JSON, every other
// environment writes text. An empty level keeps the environment default.
func InitWithLevel(env, level string) {
	Configure(env, level, "")
}

// Configure is InitWithLevel with an explicit "json" or "text" format.
// An empty format falls back to the environment default.
func Configure(env, level, format string) {
	if format == "" {
		format = "text"
		if env == "production" {
			format = "json"
		}
	}

	fallback := slog.LevelDebug
	if env == "production" {
		fallback = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level, fallback)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func LoggerWrapper() *slog.Logger {
	if defaultLogger == nil {
		// lazy initialize a development logger to avoid nil pointer panics
		Init("development")
	}
	return defaultLogger
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
