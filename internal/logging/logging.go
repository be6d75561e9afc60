// Package logging sets up the hclog logger. The terminal belongs to the
// TUI, so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"
)

// New opens (or creates) path and returns a logger writing to it, plus a
// close func for the file. An empty path discards output.
func New(path, level string) (hclog.Logger, func() error, error) {
	if path == "" {
		return NewWriter(io.Discard, level), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(file, level), file.Close, nil
}

// NewWriter builds the brewlog logger on an arbitrary writer
func NewWriter(w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "brewlog",
		Level:      lvl,
		Output:     w,
		TimeFormat: "2006-01-02T15:04:05.000Z0700",
	})
}

// Std bridges a logger into a *log.Logger for libraries that want one
func Std(logger hclog.Logger) *log.Logger {
	return logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})
}
