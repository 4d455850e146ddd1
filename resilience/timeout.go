package resilience

import (
	"context"
	"time"
)

// TimeoutConfig configures the timeout guard.
type TimeoutConfig struct {
	// Timeout is the maximum duration for a single planning call.
	// Default: 60s
	Timeout time.Duration
}

// Timeout bounds how long a planning call may run.
type Timeout struct {
	config TimeoutConfig
}

// NewTimeout creates a timeout guard, applying defaults for zero values.
func NewTimeout(config TimeoutConfig) *Timeout {
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	return &Timeout{config: config}
}

// Execute runs op under a deadline, returning ErrTimeout if it expires.
// The op keeps running in its goroutine after a timeout; it must honor
// ctx cancellation to stop early.
func (t *Timeout) Execute(ctx context.Context, op func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- op(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return ctx.Err()
	}
}

// Config returns the effective timeout configuration.
func (t *Timeout) Config() TimeoutConfig {
	return t.config
}

// ExecuteWithTimeout runs op with a one-off timeout guard.
func ExecuteWithTimeout(ctx context.Context, timeout time.Duration, op func(context.Context) error) error {
	t := NewTimeout(TimeoutConfig{Timeout: timeout})
	return t.Execute(ctx, op)
}
