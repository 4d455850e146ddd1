package patterns

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// MaxKeyLength bounds the derived cache key.
	MaxKeyLength = 100

	// maxMatcherPathLength bounds the path portion of the page-matcher
	// regex source.
	maxMatcherPathLength = 50

	// MaxKeywords bounds the number of task keywords per pattern.
	MaxKeywords = 5

	// minKeywordLength is the shortest token kept as a keyword.
	// Tokens of this length or shorter carry little signal.
	minKeywordLength = 4
)

// placeholderKeyword keeps TaskKeywords non-empty when extraction yields
// nothing, so the empty-task pattern can still be matched and labeled.
const placeholderKeyword = "task"

// DeriveKey normalizes a page identifier into a bounded, stable cache key.
//
// Well-formed URLs map to host+path truncated to MaxKeyLength. Malformed
// input degrades to the raw string truncated the same way. DeriveKey is
// total: it never fails.
func DeriveKey(pageID string) string {
	u, err := url.Parse(pageID)
	if err != nil {
		return truncate(pageID, MaxKeyLength)
	}
	return truncate(u.Host+u.Path, MaxKeyLength)
}

// PageMatcherSource derives the informational page-matcher regex source
// for a page identifier: the host plus a shorter path truncation, with
// regex metacharacters escaped. Lookup never evaluates it; it is kept as
// pattern metadata for future consumers.
func PageMatcherSource(pageID string) string {
	u, err := url.Parse(pageID)
	if err != nil {
		return regexp.QuoteMeta(truncate(pageID, maxMatcherPathLength))
	}
	return regexp.QuoteMeta(u.Host + truncate(u.Path, maxMatcherPathLength))
}

// ExtractKeywords derives the discriminating tokens for a task
// description: lower-cased, whitespace-split, short tokens dropped, first
// MaxKeywords survivors kept in original order.
//
// Deterministic and total; empty input yields an empty slice.
func ExtractKeywords(task string) []string {
	fields := strings.Fields(strings.ToLower(task))
	keywords := make([]string, 0, MaxKeywords)
	for _, f := range fields {
		if len(f) < minKeywordLength {
			continue
		}
		keywords = append(keywords, f)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
