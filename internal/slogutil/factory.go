package slogutil

import (
	"io"
	"log/slog"
	"os"

	"wordcounter/internal/config"
)

// LoggerFactory builds loggers for the CLI entry points.
// Level precedence: CLI flag > config file > default (info).
type LoggerFactory struct {
	config   config.LoggingConfig
	cliLevel string
	stderr   io.Writer
	closers  []io.Closer
}

// NewLoggerFactory creates a new logger factory. cliLevel is empty when no
// --log-level flag was given.
func NewLoggerFactory(cfg config.LoggingConfig, cliLevel string) *LoggerFactory {
	return &LoggerFactory{
		config:   cfg,
		cliLevel: cliLevel,
		stderr:   os.Stderr,
	}
}

// SetOutput replaces stderr as the primary destination (for testing).
func (f *LoggerFactory) SetOutput(w io.Writer) {
	f.stderr = w
}

// Logger returns a logger tagged with component. Records go to stderr and,
// when logging.file is set, are also appended to that file. Stdout is never
// used: it carries command results and the stdin protocol.
func (f *LoggerFactory) Logger(component string) (*slog.Logger, error) {
	level := f.EffectiveLevel()
	handler := f.newHandler(f.stderr, level)

	if f.config.File != "" {
		file, err := openLogFile(f.config.File)
		if err != nil {
			return nil, err
		}
		f.closers = append(f.closers, file)
		handler = NewTeeHandler(handler, f.newHandler(file, level))
	}

	return slog.New(handler).With("component", component), nil
}

func (f *LoggerFactory) newHandler(w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if f.config.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return NewHandler(w, opts)
}

// EffectiveLevel returns the level after applying precedence.
func (f *LoggerFactory) EffectiveLevel() slog.Level {
	if f.cliLevel != "" {
		return LevelFromString(f.cliLevel)
	}
	if f.config.Level != "" {
		return LevelFromString(f.config.Level)
	}
	return slog.LevelInfo
}

// Close closes all open log files.
func (f *LoggerFactory) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}
