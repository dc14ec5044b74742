package bitcursor

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitcursor-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds a cursor kind field to the logger.
func (l *Logger) WithKind(kind CursorKind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs the construction of a set from n input values.
func (l *Logger) LogBuild(ctx context.Context, n int, cardinality uint64) {
	l.DebugContext(ctx, "set built",
		"values", n,
		"cardinality", cardinality,
		"duplicates", uint64(n)-cardinality,
	)
}

// LogIngest logs a multi-source ingestion.
func (l *Logger) LogIngest(ctx context.Context, sources int, cardinality uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"sources", sources,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "ingest completed",
			"sources", sources,
			"cardinality", cardinality,
		)
	}
}

// LogLeak logs a cursor that was reclaimed by the garbage collector
// instead of being closed.
func (l *Logger) LogLeak(ctx context.Context, kind CursorKind) {
	l.WarnContext(ctx, "cursor reclaimed without Close",
		"kind", kind.String(),
	)
}

// LogBorrowRefused logs a mutation refused while cursors were open.
func (l *Logger) LogBorrowRefused(ctx context.Context, op string, open int64) {
	l.DebugContext(ctx, "mutation refused",
		"op", op,
		"open", open,
	)
}
