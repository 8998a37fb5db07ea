package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/iconkit/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*SpanLogger)(nil)

// SpanLogger implements sdktrace.SpanProcessor by logging every ended span at
// debug level.
type SpanLogger struct {
	log ports.Logger
}

// NewSpanLogger returns a new SpanLogger.
func NewSpanLogger(log ports.Logger) *SpanLogger {
	return &SpanLogger{log: log}
}

// OnStart does nothing.
func (l *SpanLogger) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and failure, if any.
func (l *SpanLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if l.log == nil || !s.SpanContext().IsValid() {
		return
	}

	duration := s.EndTime().Sub(s.StartTime()).String()
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		l.log.Debug("span failed", "span", s.Name(), "duration", duration, "error", desc)
		return
	}

	l.log.Debug("span ended", "span", s.Name(), "duration", duration)
}

// ForceFlush does nothing.
func (l *SpanLogger) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (l *SpanLogger) Shutdown(_ context.Context) error {
	return nil
}
