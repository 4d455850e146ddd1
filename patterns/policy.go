package patterns

import "time"

// Policy configures cache behavior.
type Policy struct {
	// MaxPatternsPerKey bounds each key's pattern list. When an insert
	// pushes a list past the bound, the lowest-confidence entry is
	// evicted. Default: 100.
	MaxPatternsPerKey int

	// ConfidenceThreshold is the minimum confidence (inclusive) a
	// pattern needs to be eligible for replay. A fresh pattern starts
	// exactly at the default threshold and is immediately eligible.
	// Default: 0.85.
	ConfidenceThreshold float64

	// TTL is the maximum age, measured from last use, during which a
	// pattern remains eligible for replay. Default: 5 minutes.
	TTL time.Duration
}

// DefaultPolicy returns the default cache policy.
// MaxPatternsPerKey: 100, ConfidenceThreshold: 0.85, TTL: 5 minutes.
func DefaultPolicy() Policy {
	return Policy{
		MaxPatternsPerKey:   100,
		ConfidenceThreshold: 0.85,
		TTL:                 5 * time.Minute,
	}
}

// withDefaults fills in zero values.
func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.MaxPatternsPerKey <= 0 {
		p.MaxPatternsPerKey = d.MaxPatternsPerKey
	}
	if p.ConfidenceThreshold <= 0 {
		p.ConfidenceThreshold = d.ConfidenceThreshold
	}
	if p.TTL <= 0 {
		p.TTL = d.TTL
	}
	return p
}
