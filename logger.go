package geomcore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific context. This provides
// structured logging with consistent field names across the layers driving
// the core; the core's own operations are pure and never log.
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

// WithHandle adds a handle field to the logger (useful for tagging
// operations on one entity or parameter).
func (l *Logger) WithHandle(h uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", h),
	}
}

// WithContainer adds a container-name field to the logger.
func (l *Logger) WithContainer(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// WithUnknowns adds an unknown-count field to the logger.
func (l *Logger) WithUnknowns(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("unknowns", n),
	}
}

// LogNewtonStep logs one Newton iteration: the system size solved and the
// solver outcome.
func (l *Logger) LogNewtonStep(ctx context.Context, iteration, unknowns int, err error) {
	if err != nil {
		l.WarnContext(ctx, "newton step failed",
			"iteration", iteration,
			"unknowns", unknowns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "newton step completed",
			"iteration", iteration,
			"unknowns", unknowns,
		)
	}
}

// LogSweep logs a mark-and-sweep removal pass over a container.
func (l *Logger) LogSweep(ctx context.Context, container string, before, after int) {
	l.DebugContext(ctx, "sweep completed",
		"container", container,
		"before", before,
		"removed", before-after,
	)
}

// LogDegenerate logs a geometric degeneracy encountered while assembling
// residuals. Degeneracies are ordinary outcomes, logged at debug level.
func (l *Logger) LogDegenerate(ctx context.Context, query string) {
	l.DebugContext(ctx, "degenerate geometry",
		"query", query,
	)
}
