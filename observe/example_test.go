package observe_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/browserops/observe"
)

// ExampleNewObserver shows the minimal setup for agent telemetry with all
// subsystems disabled (safe defaults for tests and local runs).
func ExampleNewObserver() {
	obs, err := observe.NewObserver(context.Background(), observe.Config{
		ServiceName: "browserops",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer obs.Shutdown(context.Background())

	fmt.Println(obs.Tracer() != nil)
	fmt.Println(obs.Meter() != nil)
	// Output:
	// true
	// true
}

// ExampleStepMeta_SpanName shows how span names are derived from the
// decision-step source.
func ExampleStepMeta_SpanName() {
	cached := observe.StepMeta{SessionID: "sess-1", Source: observe.SourceCache}
	planned := observe.StepMeta{SessionID: "sess-1", Source: observe.SourcePlanner}
	unknown := observe.StepMeta{SessionID: "sess-1"}

	fmt.Println(cached.SpanName())
	fmt.Println(planned.SpanName())
	fmt.Println(unknown.SpanName())
	// Output:
	// agent.step.cache
	// agent.step.planner
	// agent.step
}

// ExampleConfig_Validate shows configuration validation.
func ExampleConfig_Validate() {
	bad := observe.Config{
		ServiceName: "browserops",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "carrier-pigeon"},
	}
	fmt.Println(bad.Validate())

	good := observe.Config{
		ServiceName: "browserops",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
	}
	fmt.Println(good.Validate())
	// Output:
	// unknown tracing exporter: "carrier-pigeon"
	// <nil>
}
