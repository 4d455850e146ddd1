package patterns

import (
	"reflect"
	"strings"
	"testing"
)

// TestDeriveKey tests key normalization rules.
func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name   string
		pageID string
		want   string
	}{
		{"host and path", "https://github.com/settings/profile", "github.com/settings/profile"},
		{"query and fragment dropped", "https://example.com/a/b?x=1#frag", "example.com/a/b"},
		{"scheme-less input keeps raw form", "example.com/settings", "example.com/settings"},
		{"empty input", "", ""},
		{"malformed escape degrades to raw", "http://example.com/%zz", "http://example.com/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveKey(tt.pageID); got != tt.want {
				t.Errorf("DeriveKey(%q) = %q, want %q", tt.pageID, got, tt.want)
			}
		})
	}
}

// TestDeriveKey_Truncation verifies keys are bounded at MaxKeyLength.
func TestDeriveKey_Truncation(t *testing.T) {
	longPath := "https://example.com/" + strings.Repeat("a", 300)
	key := DeriveKey(longPath)
	if len(key) != MaxKeyLength {
		t.Errorf("len(key) = %d, want %d", len(key), MaxKeyLength)
	}
	if !strings.HasPrefix(key, "example.com/") {
		t.Errorf("key %q should start with host", key)
	}

	// Malformed input is truncated the same way.
	malformed := "%zz" + strings.Repeat("b", 300)
	if got := DeriveKey(malformed); len(got) != MaxKeyLength {
		t.Errorf("malformed key length = %d, want %d", len(got), MaxKeyLength)
	}
}

// TestPageMatcherSource verifies the metadata regex source.
func TestPageMatcherSource(t *testing.T) {
	src := PageMatcherSource("https://example.com/a.b/c")
	// Regex metacharacters must be escaped.
	if !strings.Contains(src, `a\.b`) {
		t.Errorf("PageMatcherSource = %q, want escaped dot in path", src)
	}
	if !strings.HasPrefix(src, `example\.com`) {
		t.Errorf("PageMatcherSource = %q, want escaped host prefix", src)
	}

	// Path portion is bounded by the shorter matcher truncation.
	long := "https://example.com/" + strings.Repeat("x", 200)
	src = PageMatcherSource(long)
	if want := "example.com" + "/" + strings.Repeat("x", 49); src != strings.ReplaceAll(want, ".", `\.`) {
		t.Errorf("PageMatcherSource(long) = %q, want %q", src, strings.ReplaceAll(want, ".", `\.`))
	}
}

// TestExtractKeywords tests tokenization rules.
func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		task string
		want []string
	}{
		{
			"lowercases and drops short tokens",
			"Open my GitHub Portfolio now",
			[]string{"open", "github", "portfolio"},
		},
		{
			"keeps first five in order",
			"please navigate search results download archive settings profile",
			[]string{"please", "navigate", "search", "results", "download"},
		},
		{
			"all tokens too short",
			"go to it",
			[]string{},
		},
		{
			"empty input",
			"",
			[]string{},
		},
		{
			"collapses whitespace",
			"  click\tthe   submit\n button ",
			[]string{"click", "submit", "button"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.task)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.task, got, tt.want)
			}
		})
	}
}
