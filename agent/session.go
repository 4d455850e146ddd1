package agent

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/browserops/action"
	"github.com/jonwraymond/browserops/observe"
	"github.com/jonwraymond/browserops/patterns"
	"github.com/jonwraymond/browserops/resilience"
)

// Session is one browser-automation session's decision loop.
//
// Contract:
// - Concurrency: safe for concurrent use; concurrent planning requests
//   for the same page and task collapse into a single planner call.
// - Context: NextActions honors cancellation through the planner guards.
// - Ownership: returned action slices are caller-owned copies.
type Session struct {
	id       string
	store    *patterns.Store
	planner  Planner
	executor *resilience.Executor

	mw      *observe.Middleware
	metrics observe.Metrics
	logger  observe.Logger

	flight singleflight.Group
}

// SessionOption configures a Session.
type SessionOption func(*Session) error

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) SessionOption {
	return func(s *Session) error {
		if id != "" {
			s.id = id
		}
		return nil
	}
}

// WithExecutor replaces the default planner guards.
func WithExecutor(e *resilience.Executor) SessionOption {
	return func(s *Session) error {
		if e != nil {
			s.executor = e
		}
		return nil
	}
}

// WithObserver attaches telemetry to the session's decision steps.
func WithObserver(obs observe.Observer) SessionOption {
	return func(s *Session) error {
		if obs == nil {
			return observe.ErrNilObserver
		}
		mw, err := observe.MiddlewareFromObserver(obs)
		if err != nil {
			return err
		}
		metrics, err := observe.NewMetrics(obs.Meter())
		if err != nil {
			return err
		}
		s.mw = mw
		s.logger = obs.Logger()
		s.metrics = metrics
		return nil
	}
}

// WithMetrics attaches a metrics recorder for cache lookups and steps.
func WithMetrics(m observe.Metrics) SessionOption {
	return func(s *Session) error {
		if m != nil {
			s.metrics = m
		}
		return nil
	}
}

// NewSession creates a session around an injected pattern store and
// planner. By default planner calls run through resilience guards tuned
// for inference backends, and telemetry is off.
func NewSession(store *patterns.Store, planner Planner, opts ...SessionOption) (*Session, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if planner == nil {
		return nil, ErrNilPlanner
	}

	s := &Session{
		id:       uuid.NewString(),
		store:    store,
		planner:  planner,
		executor: resilience.NewPlannerExecutor(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Store returns the session's pattern store.
func (s *Session) Store() *patterns.Store {
	return s.store
}

// PlannerCircuitState reports the circuit breaker state guarding planner
// calls.
func (s *Session) PlannerCircuitState() resilience.State {
	return s.executor.CircuitState()
}

// NextActions decides the next action sequence for a page and task.
//
// The pattern cache is consulted first; a hit replays the cached
// sequence without touching the planner. On a miss the planner runs
// under the resilience guards, concurrent identical requests share one
// call, and a successful plan is cached before returning.
func (s *Session) NextActions(ctx context.Context, pageURL, task string) ([]action.Action, error) {
	page := patterns.DeriveKey(pageURL)

	if cached, ok := s.store.Lookup(pageURL, task); ok {
		s.recordLookup(ctx, page, true)
		meta := s.stepMeta(page, task, observe.SourceCache)
		result, err := s.runStep(ctx, meta, func(ctx context.Context, meta observe.StepMeta) (any, error) {
			return cached, nil
		})
		if err != nil {
			return nil, err
		}
		return result.([]action.Action), nil
	}

	s.recordLookup(ctx, page, false)
	meta := s.stepMeta(page, task, observe.SourcePlanner)
	result, err := s.runStep(ctx, meta, func(ctx context.Context, meta observe.StepMeta) (any, error) {
		return s.plan(ctx, pageURL, task)
	})
	if err != nil {
		return nil, err
	}

	// The flight result may be shared with other callers.
	return action.Clone(result.([]action.Action)), nil
}

// plan runs the guarded planner call, collapsing concurrent identical
// requests, and caches a successful plan.
func (s *Session) plan(ctx context.Context, pageURL, task string) ([]action.Action, error) {
	key := patterns.DeriveKey(pageURL) + "\x00" + strings.ToLower(task)

	v, err, _ := s.flight.Do(key, func() (any, error) {
		var planned []action.Action
		execErr := s.executor.Execute(ctx, func(ctx context.Context) error {
			var perr error
			planned, perr = s.planner.Plan(ctx, pageURL, task)
			return perr
		})
		if execErr != nil {
			return nil, execErr
		}
		if len(planned) == 0 {
			return nil, ErrEmptyPlan
		}

		s.store.Store(pageURL, task, planned, "")
		return planned, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]action.Action), nil
}

// ReportOutcome records whether a replayed or planned sequence worked,
// updating the matching pattern's confidence.
func (s *Session) ReportOutcome(ctx context.Context, pageURL, label string, success bool) {
	s.store.ReportOutcome(pageURL, label, success)

	if s.logger != nil {
		s.logger.WithStep(observe.StepMeta{
			SessionID: s.id,
			Page:      patterns.DeriveKey(pageURL),
		}).Info(ctx, "step outcome recorded",
			observe.Field{Key: "label", Value: label},
			observe.Field{Key: "success", Value: success},
		)
	}
}

// Stats returns the pattern store's aggregate statistics.
func (s *Session) Stats() patterns.Stats {
	return s.store.Stats()
}

func (s *Session) stepMeta(page, task, source string) observe.StepMeta {
	return observe.StepMeta{
		SessionID: s.id,
		Page:      page,
		Task:      task,
		Source:    source,
	}
}

func (s *Session) runStep(ctx context.Context, meta observe.StepMeta, fn observe.StepFunc) (any, error) {
	if s.mw != nil {
		return s.mw.Wrap(fn)(ctx, meta)
	}
	return fn(ctx, meta)
}

func (s *Session) recordLookup(ctx context.Context, page string, hit bool) {
	if s.metrics != nil {
		s.metrics.RecordLookup(ctx, page, hit)
	}
}
