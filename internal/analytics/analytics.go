package analytics

import "log/slog"

// Logger records domain events for analytics. Implementations are
// best-effort: a failed emit must never surface to the caller.
type Logger interface {
	Event(name string, attrs map[string]any)
}

// SlogLogger emits events through structured logging.
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (l *SlogLogger) Event(name string, attrs map[string]any) {
	args := make([]any, 0, len(attrs)*2)
	for k, v := range attrs {
		args = append(args, k, v)
	}

	l.log.Info("event: "+name, args...)
}

// Noop discards all events.
type Noop struct{}

func (Noop) Event(string, map[string]any) {}
