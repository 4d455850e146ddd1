package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records decision-step and cache metrics for the agent.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordStep records a decision step with duration and error status.
	RecordStep(ctx context.Context, meta StepMeta, duration time.Duration, err error)

	// RecordLookup records a pattern-cache lookup outcome.
	RecordLookup(ctx context.Context, page string, hit bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	stepCount    metric.Int64Counter
	stepErrors   metric.Int64Counter
	durationHist metric.Float64Histogram
	lookupCount  metric.Int64Counter
}

// NewMetrics creates a Metrics recorder on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	stepCount, err := meter.Int64Counter(
		"agent.step.total",
		metric.WithDescription("Total number of agent decision steps"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return nil, err
	}

	stepErrors, err := meter.Int64Counter(
		"agent.step.errors",
		metric.WithDescription("Total number of failed decision steps"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"agent.step.duration_ms",
		metric.WithDescription("Decision step duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lookupCount, err := meter.Int64Counter(
		"cache.lookup.total",
		metric.WithDescription("Total number of pattern-cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		stepCount:    stepCount,
		stepErrors:   stepErrors,
		durationHist: durationHist,
		lookupCount:  lookupCount,
	}, nil
}

// RecordStep records metrics for a decision step.
func (m *metricsImpl) RecordStep(ctx context.Context, meta StepMeta, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("session.id", meta.SessionID),
	}
	if meta.Source != "" {
		attrs = append(attrs, attribute.String("step.source", meta.Source))
	}

	opt := metric.WithAttributes(attrs...)

	// Always increment total counter
	m.stepCount.Add(ctx, 1, opt)

	// Increment error counter on failure
	if err != nil {
		m.stepErrors.Add(ctx, 1, opt)
	}

	// Record duration in milliseconds
	durationMs := float64(duration.Milliseconds())
	m.durationHist.Record(ctx, durationMs, opt)
}

// RecordLookup records a pattern-cache lookup outcome.
func (m *metricsImpl) RecordLookup(ctx context.Context, page string, hit bool) {
	m.lookupCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache.page", page),
		attribute.Bool("cache.hit", hit),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordStep(ctx context.Context, meta StepMeta, duration time.Duration, err error) {
}

func (m *noopMetrics) RecordLookup(ctx context.Context, page string, hit bool) {
}
