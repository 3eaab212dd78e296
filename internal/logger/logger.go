package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init initializes the global logger. Development gets a readable text
// handler at debug level; everything else logs JSON at info.
func Init(env string) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initializing a development fallback
// if Init was never called.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger carrying extra fields.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
