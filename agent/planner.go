package agent

import (
	"context"

	"github.com/jonwraymond/browserops/action"
)

// Planner produces an action sequence for a page and task. Implementations
// typically call an inference model; this package never inspects how.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Plan must honor cancellation/deadlines.
// - Errors: a nil error with an empty plan is treated as a planning
//   failure by the session.
type Planner interface {
	Plan(ctx context.Context, pageURL, task string) ([]action.Action, error)
}

// PlannerFunc adapts a function to the Planner interface.
type PlannerFunc func(ctx context.Context, pageURL, task string) ([]action.Action, error)

// Plan calls f.
func (f PlannerFunc) Plan(ctx context.Context, pageURL, task string) ([]action.Action, error) {
	return f(ctx, pageURL, task)
}

var _ Planner = (PlannerFunc)(nil)
