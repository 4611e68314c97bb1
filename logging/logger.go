// Package logging builds the application's charmbracelet loggers.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w with timestamps and the
// "breaktimer" prefix. The writer defaults to [os.Stderr].
func New(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breaktimer",
		Level:           level,
	})
}

// With returns a child logger carrying the component name.
func With(l *log.Logger, component string) *log.Logger {
	return l.With("component", component)
}
