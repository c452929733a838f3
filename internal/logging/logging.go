// Package logging builds the charm loggers used by the CLI. While the
// terminal UI owns the screen, output goes to a size-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is where interactive sessions log.
const DefaultPath = "~/.mobhold/logs/mobhold.log"

// Options selects the sink and verbosity.
type Options struct {
	Path   string // Log file; ignored when Stderr is set
	Level  string // debug, info, warn or error
	Stderr bool   // Log to stderr instead of a file (headless commands)
	Prefix string
}

// New creates a logger. The returned closer flushes and closes the log
// file and is safe to call for stderr loggers.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "mobhold"
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if !opts.Stderr {
		path, err := expandHome(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // Days
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func expandHome(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
