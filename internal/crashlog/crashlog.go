// Package crashlog writes the engine's fatal contract-violation dumps and,
// when PI_DEBUG_REDRAW is set, its full-redraw reasons.
// Structured JSON logging via the standard library's log/slog is the one
// ambient concern this corpus implements on the standard library rather
// than a third-party logger — see DESIGN.md.
package crashlog

import (
	"log/slog"
	"os"
	"path/filepath"
)

const defaultPath = ".pi/agent/pi-crash.log"

// Logger writes JSON-line diagnostics to a file, created lazily on first
// use so a session that never crashes or enables debug dumps never touches
// the filesystem.
type Logger struct {
	path   string
	logger *slog.Logger
	file   *os.File
}

// New returns a Logger writing to the default crash-log location under the
// user's home directory, or to path if non-empty.
func New(path string) *Logger {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, defaultPath)
		} else {
			path = defaultPath
		}
	}
	return &Logger{path: path}
}

func (l *Logger) open() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		l.logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
		return l.logger
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
		return l.logger
	}
	l.file = f
	l.logger = slog.New(slog.NewJSONHandler(f, opts))
	return l.logger
}

// ContractViolation records a width-overflow crash: the offending lines,
// their measured widths, and the terminal width they violated.
func (l *Logger) ContractViolation(width int, lines []string, widths []int) {
	l.open().Error("contract violation: line exceeds terminal width",
		slog.Int("terminal_width", width),
		slog.Any("line_widths", widths),
		slog.Any("lines", lines),
	)
}

// FullRedraw records why the drawer chose a full redraw over a differential
// update, when PI_DEBUG_REDRAW is set.
func (l *Logger) FullRedraw(reason string) {
	l.open().Debug("full redraw", slog.String("reason", reason))
}

// Frame records a per-frame diagnostic line. The engine does not call it.
func (l *Logger) Frame(newLines, previousLines int, firstChanged, lastChanged int) {
	l.open().Debug("frame",
		slog.Int("new_lines", newLines),
		slog.Int("previous_lines", previousLines),
		slog.Int("first_changed", firstChanged),
		slog.Int("last_changed", lastChanged),
	)
}

// Close releases the underlying file handle, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
