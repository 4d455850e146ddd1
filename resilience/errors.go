package resilience

import "errors"

// Sentinel errors for guarded planner calls.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open and the
	// planning backend is considered unavailable.
	ErrCircuitOpen = errors.New("resilience: circuit breaker is open")

	// ErrMaxRetriesExceeded is returned when retry attempts are exhausted.
	ErrMaxRetriesExceeded = errors.New("resilience: max retries exceeded")

	// ErrRateLimitExceeded is returned when the planner request quota is
	// exceeded.
	ErrRateLimitExceeded = errors.New("resilience: rate limit exceeded")

	// ErrBulkheadFull is returned when too many planner calls are already
	// in flight.
	ErrBulkheadFull = errors.New("resilience: bulkhead at capacity")

	// ErrTimeout is returned when a planning call exceeds its time budget.
	ErrTimeout = errors.New("resilience: operation timed out")
)
