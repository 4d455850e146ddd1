package patterns

import (
	"math"
	"time"
)

// decayWindow is the time constant of the exponential staleness discount.
// A pattern unused for one window keeps roughly 68% of its success-rate
// confidence; a very stale pattern bottoms out at 50%.
const decayWindow = 24 * time.Hour

// ReportOutcome feeds an execution result back into the confidence model.
//
// The pattern is addressed by page and label; unknown key or label is a
// no-op, not an error. On a report, the outcome counter is incremented
// and confidence is recomputed as
//
//	successRate * (0.5 + 0.5 * exp(-elapsed/decayWindow))
//
// where elapsed is measured against the pattern's pre-update LastUsed.
// LastUsed is then refreshed. The product stays in [0,1]: the success
// rate is in [0,1] and the decay factor is in (0,1].
func (s *Store) ReportOutcome(pageID, label string, success bool) {
	key := DeriveKey(pageID)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patterns[key] {
		if p.Label != label {
			continue
		}

		if success {
			p.SuccessCount++
		} else {
			p.FailureCount++
		}

		rate := float64(p.SuccessCount) / float64(p.SuccessCount+p.FailureCount)
		elapsed := now.Sub(p.LastUsed)
		decay := math.Exp(-float64(elapsed) / float64(decayWindow))
		p.Confidence = rate * (0.5 + 0.5*decay)
		p.LastUsed = now
		return
	}
}
