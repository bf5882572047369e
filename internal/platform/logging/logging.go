// Package logging configures the process-wide zerolog logger. Output goes to
// stderr so it never mixes with command output on stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to out. Verbose lowers the
// level to debug; otherwise only warnings and errors surface, which keeps
// normal CLI runs quiet.
func New(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// NewStderr is the default logger used by the CLI entrypoint.
func NewStderr(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}
