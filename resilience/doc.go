// Package resilience guards calls to the planning model.
//
// Planning a fresh action sequence means a round trip to an inference
// backend: slow, rate limited, and occasionally unavailable. This package
// provides composable guards so a flaky backend degrades the agent
// gracefully instead of stalling it.
//
// # Patterns
//
//   - Circuit Breaker: stops sending requests to a failing backend after a
//     failure threshold, probing periodically for recovery.
//
//   - Retry: retries transient failures with configurable backoff
//     (exponential, linear, constant) and jitter.
//
//   - Rate Limiter: token bucket keeping planner calls under the backend's
//     request quota.
//
//   - Bulkhead: caps concurrent in-flight planner calls so parallel
//     sessions cannot exhaust the backend.
//
//   - Timeout: bounds how long a single planning call may run.
//
// # Usage
//
// Patterns compose through an Executor. NewPlannerExecutor returns one
// tuned for inference backends:
//
//	executor := resilience.NewPlannerExecutor()
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return callPlanner(ctx)
//	})
//
// Individual patterns can also be configured and composed by hand:
//
//	executor := resilience.NewExecutor(
//	    resilience.WithCircuitBreaker(resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
//	        MaxFailures:  5,
//	        ResetTimeout: 30 * time.Second,
//	    })),
//	    resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
//	        MaxAttempts:  3,
//	        InitialDelay: 500 * time.Millisecond,
//	    })),
//	    resilience.WithTimeout(60*time.Second),
//	)
package resilience
