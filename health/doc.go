// Package health reports the operational health of the agent's components.
//
// A Checker is any component that can report its status: Healthy,
// Degraded, or Unhealthy. The package ships checkers for the pattern
// store, the planner circuit, and process memory, plus an Aggregator
// that combines them and HTTP handlers for probe endpoints.
//
// # Basic Usage
//
//	storeCheck := health.NewStoreChecker(store, health.StoreCheckerConfig{})
//	plannerCheck := health.NewPlannerChecker(session.PlannerCircuitState)
//
//	agg := health.NewAggregator()
//	agg.Register("store", storeCheck)
//	agg.Register("planner", plannerCheck)
//	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg)
//	// /healthz liveness, /readyz readiness, /health detailed JSON
package health
