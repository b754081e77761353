// Package logging builds the charmbracelet/log logger shared by the CLI and
// the terminal backends. The game owns the terminal, so output goes to a
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termtris/internal/core"
)

// Prefix tags every line written by this program.
const Prefix = "termtris"

// Options selects the log destination and verbosity.
type Options struct {
	Path  string // Log file, appended to; empty discards output
	Level string // debug, info, warn, error
}

// Logger is a log.Logger that owns its output file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger for the given options.
func New(opts Options) (*Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	var file *os.File
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: cannot open %s: %w", opts.Path, err)
		}
		w, file = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})

	return &Logger{Logger: logger, file: file}, nil
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Events writes the events reported by one game step.
func Events(l *log.Logger, game string, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventSpawned:
			l.Debug("piece spawned", "game", game, "piece", e.Value)
		case core.EventLocked:
			l.Debug("piece locked", "game", game, "piece", e.Value)
		case core.EventRowsCleared:
			l.Info("rows cleared", "game", game, "rows", e.Value)
		case core.EventGameOver:
			l.Info("game over", "game", game, "score", e.Value)
		}
	}
}
