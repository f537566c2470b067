package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the structured logger used across the engine.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "attackers",
	})
	l.SetLevel(level)
	return l
}
