// Package patterns provides the adaptive action-pattern cache for the
// browser automation agent.
//
// The cache remembers which action sequences previously satisfied a given
// (page, task) combination and decides, with a confidence score that decays
// over time and adapts to success/failure feedback, when it is safe to
// replay a remembered sequence instead of asking the planner again.
package patterns
