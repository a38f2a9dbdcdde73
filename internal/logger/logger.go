// Package logger builds charmbracelet/log loggers. The terminal belongs to
// the UI while it runs, so logs go to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/altinukshini/typeahead-tui/internal/typeahead"
)

// New creates a text logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "", log.FatalLevel)
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// TransitionLogger returns an observer that logs every dispatched event at
// debug level.
func TransitionLogger(l *log.Logger) typeahead.Observer {
	return func(tr typeahead.Transition) {
		l.Debug("dispatch",
			"event", tr.Event,
			"query", tr.After.Query,
			"results", len(tr.After.Results),
			"cursor", fmt.Sprintf("%d->%d", tr.Before.CursorPosition, tr.After.CursorPosition),
			"focused", tr.After.IsFocused,
			"history", len(tr.After.History),
		)
	}
}
