package mmlog

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with log-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPath adds the log file path to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogCreate logs a create operation.
func (l *Logger) LogCreate(path string, elementSize, historySize uint64, err error) {
	if err != nil {
		l.Error("create failed",
			"path", path,
			"element_size", elementSize,
			"history_size", historySize,
			"error", err,
		)
	} else {
		l.Info("log created",
			"path", path,
			"element_size", elementSize,
			"history_size", historySize,
		)
	}
}

// LogAppend logs an append operation. seq is the new record count.
func (l *Logger) LogAppend(path string, seq uint64, err error) {
	if err != nil {
		l.Error("append failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("append completed",
			"path", path,
			"seq", seq,
		)
	}
}

// LogRead logs a read of the record with sequence number seq.
func (l *Logger) LogRead(path string, seq uint64, err error) {
	if err != nil {
		l.Error("read failed",
			"path", path,
			"seq", seq,
			"error", err,
		)
	} else {
		l.Debug("read completed",
			"path", path,
			"seq", seq,
		)
	}
}
