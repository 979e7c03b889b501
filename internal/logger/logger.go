// Package logger configures the zerolog logger used by the command line.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbose enables debug records.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
