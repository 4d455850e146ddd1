package patterns

// Stats is an aggregate snapshot of the store.
type Stats struct {
	// TotalPatterns is the number of cached patterns across all keys.
	TotalPatterns int `json:"total_patterns"`

	// TotalHits is the sum of success counts across all patterns.
	TotalHits int `json:"total_hits"`

	// CacheSize is the number of distinct cache keys.
	CacheSize int `json:"cache_size"`

	// EstimatedHitRate is TotalHits / TotalPatterns, or 0 when the
	// store is empty.
	EstimatedHitRate float64 `json:"estimated_hit_rate"`
}

// Stats aggregates counts across all keys. Pure read, no side effects,
// linear in the total number of patterns.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	st.CacheSize = len(s.patterns)
	for _, list := range s.patterns {
		st.TotalPatterns += len(list)
		for _, p := range list {
			st.TotalHits += p.SuccessCount
		}
	}
	if st.TotalPatterns > 0 {
		st.EstimatedHitRate = float64(st.TotalHits) / float64(st.TotalPatterns)
	}
	return st
}
