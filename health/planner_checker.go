package health

import (
	"context"

	"github.com/jonwraymond/browserops/resilience"
)

// CircuitStateFunc reports the circuit breaker state guarding planner
// calls. agent.Session.PlannerCircuitState satisfies it.
type CircuitStateFunc func() resilience.State

// PlannerChecker maps the planner circuit state onto health status:
// closed is healthy, half-open is degraded, open is unhealthy.
type PlannerChecker struct {
	state CircuitStateFunc
}

// NewPlannerChecker creates a checker over a circuit state source.
func NewPlannerChecker(state CircuitStateFunc) *PlannerChecker {
	return &PlannerChecker{state: state}
}

// Name returns the name of this checker.
func (c *PlannerChecker) Name() string {
	return "planner"
}

// Check reports planner availability from the circuit state.
func (c *PlannerChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	if c.state == nil {
		return Unhealthy("no planner circuit configured", ErrCheckFailed)
	}

	state := c.state()
	details := map[string]any{"circuit_state": state.String()}

	switch state {
	case resilience.StateOpen:
		return Unhealthy("planner circuit open", ErrCheckFailed).WithDetails(details)
	case resilience.StateHalfOpen:
		return Degraded("planner circuit probing for recovery").WithDetails(details)
	default:
		return Healthy("planner circuit closed").WithDetails(details)
	}
}

var _ Checker = (*PlannerChecker)(nil)
