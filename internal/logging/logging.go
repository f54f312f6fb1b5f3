// Package logging routes diagnostic output to a file while the TUI owns the
// terminal.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
)

// Disabled is the log path value that turns logging off.
const Disabled = "-"

const prefix = "quizmate"

// Setup opens path for appending and returns a logger writing to it. The
// standard library logger is redirected there too, so libraries that log
// through it do not corrupt the screen. The returned close function must be
// called on exit.
func Setup(path string, debug bool) (*slog.Logger, func() error, error) {
	if path == "" || path == Disabled {
		log.SetOutput(io.Discard)
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
