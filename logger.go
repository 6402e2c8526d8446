package kmeans

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the clusterer's event helpers so every run
// logs with the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

func (l *Logger) logIteration(ctx context.Context, iteration int, distortion float64, repairs int) {
	l.DebugContext(ctx, "kmeans iteration",
		"iteration", iteration,
		"distortion", distortion,
		"repairs", repairs,
	)
}

func (l *Logger) logRepair(ctx context.Context, centroid, instance int, distance float64) {
	l.DebugContext(ctx, "kmeans orphan repaired",
		"centroid", centroid,
		"instance", instance,
		"distance", distance,
	)
}

func (l *Logger) logDone(ctx context.Context, iterations int, distortion float64, converged bool) {
	if converged {
		l.InfoContext(ctx, "kmeans converged",
			"iterations", iterations,
			"distortion", distortion,
		)
		return
	}
	l.WarnContext(ctx, "kmeans iteration limit reached",
		"iterations", iterations,
		"distortion", distortion,
	)
}
