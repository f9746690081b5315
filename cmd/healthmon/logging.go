package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/c360/apphealth/config"
)

func setupLogger(level, format string) *slog.Logger {
	var handler slog.Handler

	// Parse level
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Create handler based on format
	switch strings.ToLower(format) {
	case config.LogFormatText:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: "15:04:05.000",
			AddSource:  level == "debug",
		})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: level == "debug",
		})
	}

	return slog.New(handler).With(
		"service", "healthmon",
		"version", Version,
		"pid", os.Getpid(),
	)
}
