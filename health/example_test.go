package health_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/browserops/action"
	"github.com/jonwraymond/browserops/health"
	"github.com/jonwraymond/browserops/patterns"
	"github.com/jonwraymond/browserops/resilience"
)

// ExampleAggregator combines store and planner checks for an agent
// process.
func ExampleAggregator() {
	store := patterns.NewStore(patterns.DefaultPolicy())
	store.Store("https://shop.example.com/search", "search for a wireless mouse",
		[]action.Action{{Type: action.TypeClick, Selector: "#search"}}, "")

	agg := health.NewAggregator()
	agg.Register("store", health.NewStoreChecker(store, health.StoreCheckerConfig{}))
	agg.Register("planner", health.NewPlannerChecker(func() resilience.State {
		return resilience.StateClosed
	}))

	results := agg.CheckAll(context.Background())
	fmt.Println("overall:", agg.OverallStatus(results))
	fmt.Println("store:", results["store"].Status)
	fmt.Println("planner:", results["planner"].Status)
	// Output:
	// overall: healthy
	// store: healthy
	// planner: healthy
}

// ExamplePlannerChecker maps circuit state to health status.
func ExamplePlannerChecker() {
	open := health.NewPlannerChecker(func() resilience.State {
		return resilience.StateOpen
	})

	result := open.Check(context.Background())
	fmt.Println(result.Status)
	fmt.Println(result.Message)
	// Output:
	// unhealthy
	// planner circuit open
}
