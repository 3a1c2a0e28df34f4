package vectorengine

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific context.
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

// WithLength adds a vector length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// WithOperation adds an operation name field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogGenerate logs a generator call.
func (l *Logger) LogGenerate(kind string, length int, err error) {
	if err != nil {
		l.Warn("generate failed",
			"kind", kind,
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("generate completed",
			"kind", kind,
			"length", length,
		)
	}
}

// LogTransform logs a rejected transform. Successful transforms are not logged.
func (l *Logger) LogTransform(op string, length int, err error) {
	if err == nil {
		return
	}
	l.Warn("transform failed",
		"op", op,
		"length", length,
		"error", err,
	)
}

// LogShapeRepair logs that cached statistics contradicted the shape flags
// and were cleared for recomputation.
func (l *Logger) LogShapeRepair(flags Flags, minimum, maximum int64) {
	l.Warn("inconsistent shape repaired",
		"flags", flags.String(),
		"minimum", minimum,
		"maximum", maximum,
	)
}
