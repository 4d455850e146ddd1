package observe

import (
	"context"
	"time"
)

// StepFunc is the signature for decision-step execution functions.
// This is the standard function signature that Middleware wraps.
type StepFunc func(ctx context.Context, meta StepMeta) (any, error)

// Middleware wraps decision steps with observability (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe StepFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from wrapped function are recorded and propagated unchanged.
//   - Ownership: Return values are passed through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a StepFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn StepFunc) StepFunc {
	return func(ctx context.Context, meta StepMeta) (any, error) {
		if err := meta.Validate(); err != nil {
			return nil, err
		}

		// Start span
		ctx, span := m.tracer.StartSpan(ctx, meta)

		// Record start time
		start := time.Now()

		// Execute the function
		result, err := fn(ctx, meta)

		// Calculate duration
		duration := time.Since(start)

		// End span (records error status if err != nil)
		m.tracer.EndSpan(span, err)

		// Record metrics
		m.metrics.RecordStep(ctx, meta, duration, err)

		// Log the step
		stepLogger := m.logger.WithStep(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			stepLogger.Error(ctx, "decision step failed", fields...)
		} else {
			stepLogger.Info(ctx, "decision step completed", fields...)
		}

		return result, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
