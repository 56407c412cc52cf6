// Package logging configures the zerolog logger used by the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a human-readable logger writing to w. Debug enables debug
// level; otherwise only warnings and errors are written, so ordinary command
// output stays clean.
func New(w io.Writer, debug, noColor bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Setup installs New(w, debug, noColor) as the global logger.
func Setup(w io.Writer, debug, noColor bool) {
	log.Logger = New(w, debug, noColor)
}
