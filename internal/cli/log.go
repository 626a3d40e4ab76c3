package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the command logger writing to w.
func NewLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: prefix})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
