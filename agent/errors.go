package agent

import "errors"

// Sentinel errors for session construction and planning.
var (
	// ErrNilStore indicates a nil pattern store was provided.
	ErrNilStore = errors.New("agent: pattern store is nil")

	// ErrNilPlanner indicates a nil planner was provided.
	ErrNilPlanner = errors.New("agent: planner is nil")

	// ErrEmptyPlan indicates the planner returned no actions.
	ErrEmptyPlan = errors.New("agent: planner returned an empty plan")
)
