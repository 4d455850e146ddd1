package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Step sources: where the actions for a decision step came from.
const (
	// SourceCache marks a step replayed from the pattern cache.
	SourceCache = "cache"
	// SourcePlanner marks a step planned by the inference model.
	SourcePlanner = "planner"
)

// StepMeta contains metadata about an agent decision step for telemetry
// purposes.
type StepMeta struct {
	SessionID string // Automation session identifier (required)
	Page      string // Derived page key for the step (optional)
	Task      string // Free-text task description; never logged verbatim
	Source    string // SourceCache or SourcePlanner (optional)
}

// Validate checks that required step metadata is present.
func (m StepMeta) Validate() error {
	if m.SessionID == "" {
		return ErrMissingSessionID
	}
	return nil
}

// SpanName returns the deterministic span name for this step.
// Format: agent.step.<source> or agent.step
func (m StepMeta) SpanName() string {
	if m.Source != "" {
		return "agent.step." + m.Source
	}
	return "agent.step"
}

// Tracer wraps OpenTelemetry tracing with step-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a decision step.
	StartSpan(ctx context.Context, meta StepMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with step metadata as attributes.
// Task text is deliberately excluded from span attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta StepMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("session.id", meta.SessionID),
		attribute.Bool("step.error", false), // Will be updated in EndSpan if error
	}

	if meta.Page != "" {
		attrs = append(attrs, attribute.String("step.page", meta.Page))
	}
	if meta.Source != "" {
		attrs = append(attrs, attribute.String("step.source", meta.Source))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("step.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta StepMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
