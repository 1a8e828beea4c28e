// =============================================================================
// Employee Records Book - Logging
// =============================================================================
//
// This package builds the diagnostic logger. Standard output belongs to the
// interactive menu, so logs only ever go to a log file or to stderr.
//
// DESTINATION:
//   1. log_file set  -> appended to that file
//   2. --verbose     -> stderr, console formatted
//   3. otherwise     -> discarded
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects where and how much to log.
type Options struct {
	// File is the log file path. Empty disables file logging.
	File string

	// Level is one of "debug", "info", "warn", "error".
	Level string

	// Verbose forces debug level, and sends logs to Stderr when File is empty.
	Verbose bool

	// Stderr receives console output in verbose mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// New builds a logger from opts. The returned close function releases the log
// file, if one was opened, and is always safe to call.
func New(opts Options) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), noop, err
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	switch {
	case opts.File != "":
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return logger, f.Close, nil

	case opts.Verbose:
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writer := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}
		logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
		return logger, noop, nil
	}

	return zerolog.Nop(), noop, nil
}

// ParseLevel maps a configuration level name to a zerolog level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch name {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
}
