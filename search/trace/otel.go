package trace

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelLogger records every search event as a span event on a single root
// span, grounded on the teacher's OTelEmitter (one Event -> one span event,
// with attributes drawn from the event's fields and an error status set on
// failure). Unlike the teacher, which opens a child span per workflow node,
// a search iteration is far too cheap to deserve its own span: the whole
// search is one span, and EXPAND/BACKTRACK/etc become span events on it.
type OTelLogger struct {
	*NoopLogger

	span trace.Span
}

// NewOTelLogger returns an OTelLogger that annotates span with one event per
// search event. The caller owns span's lifecycle (start/end).
func NewOTelLogger(span trace.Span) *OTelLogger {
	return &OTelLogger{NoopLogger: NewNoopLogger(), span: span}
}

func (o *OTelLogger) Log(ev Event) {
	switch ev.Kind {
	case Expand, Backtrack, Prune, PruneBacktrack, Strengthen, ShortCircuit, Terminate, Timeout:
	default:
		illegalEvent(ev.Kind)
	}
	o.span.AddEvent(ev.Kind.String(), trace.WithAttributes(
		attribute.Int("iter", ev.Iter),
		attribute.Int("stackDepth", ev.StackDepth),
	))
}

func (o *OTelLogger) LogStrengthen(objectiveJSON string, ev Event) {
	o.span.AddEvent(Strengthen.String(), trace.WithAttributes(
		attribute.Int("iter", ev.Iter),
		attribute.Int("stackDepth", ev.StackDepth),
		attribute.String("objective", objectiveJSON),
	))
}

func (o *OTelLogger) Timeout(ev Event) error {
	err := o.NoopLogger.Timeout(ev)
	if err != nil {
		o.span.AddEvent(Timeout.String(), trace.WithAttributes(attribute.Int("iter", ev.Iter)))
		o.span.SetStatus(codes.Error, err.Error())
	}
	return err
}
