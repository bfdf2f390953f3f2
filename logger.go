package hotsax

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hotsax-specific context.
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

// WithWindowSize adds a window_size field to the logger.
func (l *Logger) WithWindowSize(windowSize int) *Logger {
	return &Logger{
		Logger: l.Logger.With("window_size", windowSize),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithSeriesLen adds a series_len field to the logger.
func (l *Logger) WithSeriesLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("series_len", n),
	}
}

// LogSearch logs a discord search.
func (l *Logger) LogSearch(ctx context.Context, mode Mode, windowSize int, discord Discord, err error) {
	if err != nil {
		l.ErrorContext(ctx, "discord search failed",
			"mode", mode.String(),
			"window_size", windowSize,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "discord search completed",
			"mode", mode.String(),
			"window_size", windowSize,
			"position", discord.Position,
			"distance", discord.Distance,
			"word", discord.Word,
		)
	}
}

// LogIndexBuild logs a candidate index build.
func (l *Logger) LogIndexBuild(ctx context.Context, windows, groups int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"windows", windows,
			"groups", groups,
		)
	}
}
