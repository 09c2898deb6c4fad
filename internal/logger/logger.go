// Package logger constructs the application's zerolog loggers.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the main application logger. Local gets a human-friendly
// console writer on stderr; every other environment logs JSON.
func New(env string) zerolog.Logger {
	level := zerolog.InfoLevel
	if env == "local" {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
// SQL logging is noisy, so it never goes below the app's own level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}
