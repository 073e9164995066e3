// Package logging builds the zerolog logger used by the invoke-go tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger on stdout at info level. In development it writes to a console
// writer at debug level. A non-empty level ("warn", "debug", ...) overrides the default.
func New(appEnv, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, appEnv, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, appEnv, level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if appEnv == "development" {
		lvl = zerolog.DebugLevel
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true})
	}
	return logger
}
