package bridge

import (
	"context"

	"go.trai.ch/iconkit/internal/core/ports"
)

var _ ports.Bridge = (*TracedBridge)(nil)

// TracedBridge opens a span around every command of the wrapped bridge.
type TracedBridge struct {
	next   ports.Bridge
	tracer ports.Tracer
}

// WithTracing wraps b so each Invoke is recorded as a span named after the command.
func WithTracing(b ports.Bridge, tracer ports.Tracer) *TracedBridge {
	return &TracedBridge{next: b, tracer: tracer}
}

// Invoke implements ports.Bridge.
func (t *TracedBridge) Invoke(ctx context.Context, command string, args map[string]any) (any, error) {
	ctx, span := t.tracer.Start(ctx, "bridge."+command)
	defer span.End()

	span.SetAttribute("bridge.command", command)
	for k, v := range args {
		span.SetAttribute("bridge.arg."+k, v)
	}

	result, err := t.next.Invoke(ctx, command, args)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

// Close implements ports.Bridge.
func (t *TracedBridge) Close() error {
	return t.next.Close()
}
