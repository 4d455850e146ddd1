package patterns

import (
	"strings"
	"time"

	"github.com/jonwraymond/browserops/action"
)

// InitialConfidence is the confidence assigned to a freshly stored pattern.
const InitialConfidence = 0.85

// Pattern is a cached, replayable action sequence for a (page, task) pair.
//
// Contract:
// - Ownership: the store owns stored patterns; Lookup returns copies of
//   the action sequence, never the stored slice.
// - Invariants: Confidence is always in [0,1]; TaskKeywords is never
//   empty; SuccessCount+FailureCount >= 1.
type Pattern struct {
	// ID uniquely identifies the pattern. Derived from the cache key
	// and the creation timestamp.
	ID string

	// Label is the human-readable pattern name. Supplied by the caller
	// or synthesized from the first extracted keyword.
	Label string

	// PageMatcher is a regular expression source derived from the
	// originating page identifier. Informational only: lookup is by
	// exact key, this field never gates matching.
	PageMatcher string

	// TaskKeywords are the discriminating tokens extracted from the
	// task description that produced this pattern. At most five,
	// lowercase, each longer than three characters.
	TaskKeywords []string

	// Actions is the ordered sequence replayed verbatim on a hit.
	Actions []action.Action

	// SuccessCount and FailureCount accumulate outcome reports.
	// Creation counts as the first success.
	SuccessCount int
	FailureCount int

	// LastUsed is refreshed on every hit and every outcome report.
	LastUsed time.Time

	// Confidence estimates the likelihood the pattern still applies.
	Confidence float64
}

// matchesTask reports whether any of the pattern's keywords occurs as a
// substring of the lower-cased task text.
func (p *Pattern) matchesTask(taskLower string) bool {
	for _, kw := range p.TaskKeywords {
		if kw != "" && strings.Contains(taskLower, kw) {
			return true
		}
	}
	return false
}
