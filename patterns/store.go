package patterns

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonwraymond/browserops/action"
)

// Store is the in-memory adaptive action-pattern cache.
//
// Contract:
// - Concurrency: safe for concurrent use; mutating operations are
//   serialized by a store-wide lock.
// - Errors: operations have no failure modes. Malformed page identifiers
//   degrade to truncated-string keys, absent keys and labels are normal
//   misses or no-ops.
// - Lifecycle: state is process-local; a new Store starts empty and
//   needs no teardown.
type Store struct {
	mu       sync.RWMutex
	patterns map[string][]*Pattern
	policy   Policy
	now      func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the store's time source. Confidence decay and TTL
// checks become deterministic under an injected clock.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty pattern store with the given policy.
// Zero policy fields fall back to DefaultPolicy values.
func NewStore(policy Policy, opts ...StoreOption) *Store {
	s := &Store{
		patterns: make(map[string][]*Pattern),
		policy:   policy.withDefaults(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the store's effective policy.
func (s *Store) Policy() Policy {
	return s.policy
}

// Lookup finds the best cached action sequence for a page and task.
// Returns (nil, false) on miss; a miss is a normal outcome, not an error.
//
// A pattern matches when all of the following hold: at least one of its
// keywords is a substring of the lower-cased task text, its confidence
// meets the policy threshold, and it was last used within the TTL.
// The first match in list order wins. A hit refreshes LastUsed.
func (s *Store) Lookup(pageID, task string) ([]action.Action, bool) {
	key := DeriveKey(pageID)
	taskLower := strings.ToLower(task)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patterns[key] {
		if !p.matchesTask(taskLower) {
			continue
		}
		if p.Confidence < s.policy.ConfidenceThreshold {
			continue
		}
		if now.Sub(p.LastUsed) >= s.policy.TTL {
			continue
		}

		p.LastUsed = now
		return action.Clone(p.Actions), true
	}

	return nil, false
}

// Store caches a successful action sequence for a page and task.
//
// Each call appends an independent pattern; repeated calls with the same
// inputs accumulate entries rather than overwriting (callers deduplicate
// if needed). When the key's list exceeds the policy bound, the single
// lowest-confidence entry is evicted.
func (s *Store) Store(pageID, task string, actions []action.Action, label string) {
	key := DeriveKey(pageID)
	now := s.now()

	keywords := ExtractKeywords(task)
	if len(keywords) == 0 {
		keywords = []string{placeholderKeyword}
	}
	if label == "" {
		label = keywords[0]
	}

	p := &Pattern{
		ID:           fmt.Sprintf("%s-%d", key, now.UnixMilli()),
		Label:        label,
		PageMatcher:  PageMatcherSource(pageID),
		TaskKeywords: keywords,
		Actions:      action.Clone(actions),
		SuccessCount: 1,
		FailureCount: 0,
		LastUsed:     now,
		Confidence:   InitialConfidence,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.patterns[key] = append(s.patterns[key], p)
	if len(s.patterns[key]) > s.policy.MaxPatternsPerKey {
		s.evictLocked(key)
	}
}

// evictLocked drops the single lowest-confidence pattern for a key.
// Runs synchronously inside Store; there is no background sweep.
// Caller must hold the write lock.
func (s *Store) evictLocked(key string) {
	list := s.patterns[key]
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Confidence > list[j].Confidence
	})
	s.patterns[key] = list[:len(list)-1]
}

// ClearKey removes all patterns for a page's derived key.
// No-op if the key is absent.
func (s *Store) ClearKey(pageID string) {
	key := DeriveKey(pageID)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patterns, key)
}

// ClearAll empties the store.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns = make(map[string][]*Pattern)
}
