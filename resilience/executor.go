package resilience

import (
	"context"
	"time"
)

// Executor composes multiple guards around a single call.
type Executor struct {
	circuitBreaker *CircuitBreaker
	retry          *Retry
	rateLimiter    *RateLimiter
	bulkhead       *Bulkhead
	timeout        *Timeout
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// NewExecutor creates an executor with the given guards. An executor with
// no guards runs operations directly.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewPlannerExecutor returns an executor tuned for inference backends:
// retry with backoff, a circuit breaker, a per-call timeout, a request
// quota, and a cap on concurrent calls.
func NewPlannerExecutor() *Executor {
	return NewExecutor(
		WithCircuitBreaker(NewCircuitBreaker(CircuitBreakerConfig{})),
		WithRetry(NewRetry(RetryConfig{Jitter: true})),
		WithRateLimiter(NewRateLimiter(RateLimiterConfig{WaitOnLimit: true})),
		WithBulkhead(NewBulkhead(BulkheadConfig{MaxWait: time.Second})),
		WithTimeout(60*time.Second),
	)
}

// WithCircuitBreaker adds a circuit breaker to the executor.
func WithCircuitBreaker(cb *CircuitBreaker) ExecutorOption {
	return func(e *Executor) {
		e.circuitBreaker = cb
	}
}

// WithRetry adds retry logic to the executor.
func WithRetry(r *Retry) ExecutorOption {
	return func(e *Executor) {
		e.retry = r
	}
}

// WithRateLimiter adds rate limiting to the executor.
func WithRateLimiter(rl *RateLimiter) ExecutorOption {
	return func(e *Executor) {
		e.rateLimiter = rl
	}
}

// WithBulkhead adds a concurrency cap to the executor.
func WithBulkhead(b *Bulkhead) ExecutorOption {
	return func(e *Executor) {
		e.bulkhead = b
	}
}

// WithTimeout adds a per-call timeout to the executor.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = NewTimeout(TimeoutConfig{Timeout: timeout})
	}
}

// WithTimeoutConfig adds a preconfigured timeout guard to the executor.
func WithTimeoutConfig(t *Timeout) ExecutorOption {
	return func(e *Executor) {
		e.timeout = t
	}
}

// CircuitState returns the circuit breaker state, or StateClosed when no
// circuit breaker is configured.
func (e *Executor) CircuitState() State {
	if e.circuitBreaker == nil {
		return StateClosed
	}
	return e.circuitBreaker.State()
}

// Execute runs op through all configured guards.
//
// The execution order is:
//  1. Rate Limiter - keeps calls under the backend quota
//  2. Bulkhead - caps concurrent calls
//  3. Circuit Breaker - fails fast on a down backend
//  4. Retry - retries transient failures
//  5. Timeout - bounds each attempt
func (e *Executor) Execute(ctx context.Context, op func(context.Context) error) error {
	execute := op

	// Build the chain from the inside out.
	if e.timeout != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.timeout.Execute(ctx, inner)
		}
	}

	if e.retry != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.retry.Execute(ctx, inner)
		}
	}

	if e.circuitBreaker != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.circuitBreaker.Execute(ctx, inner)
		}
	}

	if e.bulkhead != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.bulkhead.Execute(ctx, inner)
		}
	}

	if e.rateLimiter != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.rateLimiter.Execute(ctx, inner)
		}
	}

	return execute(ctx)
}
