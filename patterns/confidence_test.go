package patterns

import (
	"math"
	"testing"
	"time"
)

const confidenceEpsilon = 1e-9

// TestReportOutcome_FailureStreak verifies a run of failures drives
// confidence down to the raw success rate (no decay at zero elapsed
// time) and below the replay threshold.
func TestReportOutcome_FailureStreak(t *testing.T) {
	s, _ := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")

	for i := 0; i < 5; i++ {
		s.ReportOutcome(page, "pattern", false)
	}

	p := s.patterns[DeriveKey(page)][0]
	wantRate := 1.0 / 6.0
	if p.Confidence > wantRate+confidenceEpsilon {
		t.Errorf("Confidence = %v, want <= success rate %v", p.Confidence, wantRate)
	}
	if p.Confidence >= InitialConfidence {
		t.Errorf("Confidence = %v, want strictly below initial %v", p.Confidence, InitialConfidence)
	}
	if p.SuccessCount != 1 || p.FailureCount != 5 {
		t.Errorf("counts = %d/%d, want 1/5", p.SuccessCount, p.FailureCount)
	}
}

// TestReportOutcome_StalenessDecay verifies the exponential discount:
// a perfectly reliable pattern unused for one decay window keeps only
// 0.5 + 0.5/e of its success rate.
func TestReportOutcome_StalenessDecay(t *testing.T) {
	s, clock := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")

	clock.Advance(24 * time.Hour)
	s.ReportOutcome(page, "pattern", true)

	p := s.patterns[DeriveKey(page)][0]
	want := 1.0 * (0.5 + 0.5*math.Exp(-1))
	if math.Abs(p.Confidence-want) > confidenceEpsilon {
		t.Errorf("Confidence = %v, want %v", p.Confidence, want)
	}
	if !p.LastUsed.Equal(clock.Now()) {
		t.Errorf("LastUsed = %v, want refreshed to %v", p.LastUsed, clock.Now())
	}
}

// TestReportOutcome_FreshSuccessKeepsFullRate verifies an immediately
// reported success keeps the full success-rate confidence.
func TestReportOutcome_FreshSuccessKeepsFullRate(t *testing.T) {
	s, _ := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")

	s.ReportOutcome(page, "pattern", true)

	p := s.patterns[DeriveKey(page)][0]
	if math.Abs(p.Confidence-1.0) > confidenceEpsilon {
		t.Errorf("Confidence = %v, want 1.0 (rate 2/2, no decay)", p.Confidence)
	}
}

// TestReportOutcome_ConfidenceStaysInRange exercises long mixed
// outcome sequences across varying gaps and asserts the invariant
// 0 <= confidence <= 1 after every update.
func TestReportOutcome_ConfidenceStaysInRange(t *testing.T) {
	s, clock := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")
	key := DeriveKey(page)

	gaps := []time.Duration{
		0,
		time.Second,
		time.Minute,
		3 * time.Hour,
		24 * time.Hour,
		240 * time.Hour,
	}

	for i := 0; i < 200; i++ {
		clock.Advance(gaps[i%len(gaps)])
		s.ReportOutcome(page, "pattern", i%3 == 0)

		p := s.patterns[key][0]
		if p.Confidence < 0 || p.Confidence > 1 {
			t.Fatalf("after update %d: Confidence = %v, out of [0,1]", i, p.Confidence)
		}
		if p.SuccessCount+p.FailureCount < 1 {
			t.Fatalf("after update %d: count invariant violated", i)
		}
	}
}

// TestReportOutcome_UnknownIsNoOp verifies reports against absent keys
// or labels change nothing.
func TestReportOutcome_UnknownIsNoOp(t *testing.T) {
	s, _ := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")

	s.ReportOutcome("https://absent.example.com/", "pattern", false)
	s.ReportOutcome(page, "no-such-label", false)

	p := s.patterns[DeriveKey(page)][0]
	if p.SuccessCount != 1 || p.FailureCount != 0 {
		t.Errorf("counts = %d/%d, want untouched 1/0", p.SuccessCount, p.FailureCount)
	}
	if p.Confidence != InitialConfidence {
		t.Errorf("Confidence = %v, want untouched %v", p.Confidence, InitialConfidence)
	}
}

// TestReportOutcome_RecoveryAfterFailures verifies fresh successes lift
// a demoted pattern back toward eligibility.
func TestReportOutcome_RecoveryAfterFailures(t *testing.T) {
	s, _ := testStore(Policy{})
	page := "https://github.com/alice"
	s.Store(page, "open my github portfolio", testActions, "pattern")

	s.ReportOutcome(page, "pattern", false)
	low := s.patterns[DeriveKey(page)][0].Confidence

	for i := 0; i < 20; i++ {
		s.ReportOutcome(page, "pattern", true)
	}
	high := s.patterns[DeriveKey(page)][0].Confidence

	if high <= low {
		t.Errorf("confidence after successes = %v, want above %v", high, low)
	}
	if _, ok := s.Lookup(page, "open github again"); !ok {
		t.Error("recovered pattern should be eligible for replay")
	}
}
