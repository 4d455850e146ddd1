package health

import (
	"context"
	"fmt"

	"github.com/jonwraymond/browserops/patterns"
)

// StatsSource provides pattern-cache statistics. *patterns.Store and
// *agent.Session both satisfy it.
type StatsSource interface {
	Stats() patterns.Stats
}

// StoreCheckerConfig configures the pattern store checker.
type StoreCheckerConfig struct {
	// WarnTotalPatterns is the total pattern count that triggers a
	// degraded status, signaling eviction churn ahead.
	// Default: 5000
	WarnTotalPatterns int
}

// StoreChecker reports the health of the pattern store.
type StoreChecker struct {
	source StatsSource
	config StoreCheckerConfig
}

// NewStoreChecker creates a checker over a pattern-cache stats source.
func NewStoreChecker(source StatsSource, config StoreCheckerConfig) *StoreChecker {
	if config.WarnTotalPatterns <= 0 {
		config.WarnTotalPatterns = 5000
	}

	return &StoreChecker{source: source, config: config}
}

// Name returns the name of this checker.
func (c *StoreChecker) Name() string {
	return "store"
}

// Check reports the store's aggregate state. The store itself has no
// failure modes, so the check degrades only on capacity pressure.
func (c *StoreChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	if c.source == nil {
		return Unhealthy("no pattern store configured", ErrCheckFailed)
	}

	stats := c.source.Stats()

	details := map[string]any{
		"total_patterns":     stats.TotalPatterns,
		"total_hits":         stats.TotalHits,
		"cache_size":         stats.CacheSize,
		"estimated_hit_rate": stats.EstimatedHitRate,
	}

	if stats.TotalPatterns >= c.config.WarnTotalPatterns {
		return Degraded(
			fmt.Sprintf("pattern store under pressure: %d patterns", stats.TotalPatterns),
		).WithDetails(details)
	}

	return Healthy(
		fmt.Sprintf("pattern store serving %d keys", stats.CacheSize),
	).WithDetails(details)
}

var _ Checker = (*StoreChecker)(nil)
