package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/browserops/resilience"
)

// ExampleNewExecutor composes guards around a flaky planning backend.
func ExampleNewExecutor() {
	executor := resilience.NewExecutor(
		resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
		})),
		resilience.WithTimeout(time.Second),
	)

	calls := 0
	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("backend overloaded")
		}
		return nil
	})

	fmt.Println("calls:", calls)
	fmt.Println("err:", err)
	// Output:
	// calls: 2
	// err: <nil>
}

// ExampleCircuitBreaker shows fail-fast behavior once the backend is
// considered down.
func ExampleCircuitBreaker() {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		MaxFailures:  2,
		ResetTimeout: time.Minute,
	})
	ctx := context.Background()

	fail := func(ctx context.Context) error { return errors.New("planner unavailable") }
	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, fail)

	err := cb.Execute(ctx, func(ctx context.Context) error { return nil })
	fmt.Println(cb.State())
	fmt.Println(errors.Is(err, resilience.ErrCircuitOpen))
	// Output:
	// open
	// true
}

// ExampleRateLimiter shows a planner quota of one burst call.
func ExampleRateLimiter() {
	rl := resilience.NewRateLimiter(resilience.RateLimiterConfig{
		Rate:  0.001,
		Burst: 1,
	})

	fmt.Println(rl.Allow())
	fmt.Println(rl.Allow())
	// Output:
	// true
	// false
}
