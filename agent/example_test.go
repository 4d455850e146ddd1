package agent_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/browserops/action"
	"github.com/jonwraymond/browserops/agent"
	"github.com/jonwraymond/browserops/patterns"
	"github.com/jonwraymond/browserops/resilience"
)

// ExampleSession_NextActions shows the cache-first decision loop: the
// planner runs once, then identical requests replay the cached plan.
func ExampleSession_NextActions() {
	plannerCalls := 0
	planner := agent.PlannerFunc(func(ctx context.Context, pageURL, task string) ([]action.Action, error) {
		plannerCalls++
		return []action.Action{
			{Type: action.TypeClick, Selector: "#search"},
			{Type: action.TypeInput, Selector: "#search", Value: "wireless mouse"},
		}, nil
	})

	store := patterns.NewStore(patterns.DefaultPolicy())
	session, err := agent.NewSession(store, planner,
		agent.WithExecutor(resilience.NewExecutor()),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		actions, err := session.NextActions(ctx, "https://shop.example.com/search", "search for a wireless mouse")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("decision %d: %d actions\n", i+1, len(actions))
	}
	fmt.Println("planner calls:", plannerCalls)
	// Output:
	// decision 1: 2 actions
	// decision 2: 2 actions
	// decision 3: 2 actions
	// planner calls: 1
}

// ExampleSession_ReportOutcome shows failure feedback disabling replay.
func ExampleSession_ReportOutcome() {
	planner := agent.PlannerFunc(func(ctx context.Context, pageURL, task string) ([]action.Action, error) {
		return []action.Action{{Type: action.TypeClick, Selector: "#buy"}}, nil
	})

	store := patterns.NewStore(patterns.DefaultPolicy())
	session, err := agent.NewSession(store, planner,
		agent.WithExecutor(resilience.NewExecutor()),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx := context.Background()
	_, _ = session.NextActions(ctx, "https://shop.example.com/item", "buy the blue kettle")

	stats := session.Stats()
	fmt.Println("patterns before feedback:", stats.TotalPatterns)

	// The replayed sequence failed on the page; confidence drops and the
	// pattern stops matching. The label defaults to the first extracted
	// keyword of the originating task.
	session.ReportOutcome(ctx, "https://shop.example.com/item", "blue", false)

	_, hit := store.Lookup("https://shop.example.com/item", "buy the blue kettle")
	fmt.Println("replay after failure:", hit)
	// Output:
	// patterns before feedback: 1
	// replay after failure: false
}
