package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own logging into slog. Wake-ups are debug noise.
type cronLogger struct {
	log *slog.Logger
}

var _ cron.Logger = cronLogger{}

func newCronLogger(log *slog.Logger) cronLogger {
	return cronLogger{log: log.With("component", "cron")}
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.DebugContext(context.Background(), msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.ErrorContext(context.Background(), msg, append([]any{"error", err}, keysAndValues...)...)
}
