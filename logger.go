package filez

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filez-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRoot adds the bound root directory to the logger.
func (l *Logger) WithRoot(root string) *Logger {
	return &Logger{
		Logger: l.Logger.With("root", root),
	}
}

// LogRead logs a read operation.
func (l *Logger) LogRead(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"path", path,
			"bytes", size,
		)
	}
}

// LogWrite logs a write operation.
func (l *Logger) LogWrite(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "write completed",
			"path", path,
			"bytes", size,
		)
	}
}

// LogList logs a list operation.
func (l *Logger) LogList(ctx context.Context, pattern string, matches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "list failed",
			"pattern", pattern,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "list completed",
			"pattern", pattern,
			"matches", matches,
		)
	}
}
