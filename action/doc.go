// Package action defines the replayable browser action records exchanged
// between the planner, the executor, and the pattern cache.
//
// Records are treated as opaque by the cache: they are stored and replayed
// verbatim, never inspected or rewritten.
package action
