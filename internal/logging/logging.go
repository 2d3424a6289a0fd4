// Package logging configures the zerolog logger used across the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to w, normally stderr so
// stdout stays reserved for event listings. verbose enables debug-level
// output; otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
