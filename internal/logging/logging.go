// Package logging builds the structured loggers used by the CLI and the SSH
// server. The game owns the terminal while playing, so local sessions log to
// a file in the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Level  log.Level
	JSON   bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           opts.Level,
	})
	if opts.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps debug, info, warn and error (any case) to a level.
// Anything else yields info.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// DefaultPath returns the log file location under the XDG state directory.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join("flappy", "flappy.log"))
	if err != nil {
		return "", fmt.Errorf("logging: cannot resolve state path: %w", err)
	}
	return path, nil
}

// OpenFile opens path for appending, or DefaultPath when path is empty.
// It returns the file and the path actually used.
func OpenFile(path string) (*os.File, string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, path, nil
}
