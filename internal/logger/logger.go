// Package logger wraps charmbracelet/log with the prefixed-constructor
// pattern used across this module's components.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger prefixed for one component, writing to stderr at
// the process-wide log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Discard returns a logger that drops everything, for tests and embedders
// that don't want load-time progress on stderr.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: "symspell"})
}
