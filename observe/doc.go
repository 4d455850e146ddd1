// Package observe provides observability primitives for agent decision
// steps and the action-pattern cache.
//
// It is a pure instrumentation library: no planning, no browser I/O
// beyond exporter setup. Consumers wire the observer into the agent
// session loop.
package observe
