package action

import (
	"fmt"
	"strings"
)

// Type identifies the kind of browser action.
type Type string

const (
	// TypeClick clicks the element identified by Selector.
	TypeClick Type = "click"
	// TypeInput types Value into the element identified by Selector.
	TypeInput Type = "type"
	// TypeNavigate navigates the page to Value.
	TypeNavigate Type = "navigate"
	// TypeScroll scrolls the page by Value (e.g. "down", "up").
	TypeScroll Type = "scroll"
	// TypeWait pauses before the next action.
	TypeWait Type = "wait"
)

// Action is a single replayable browser automation step.
//
// Contract:
// - Ownership: actions are value types; callers may copy them freely.
// - Serialization: the JSON form is stable and round-trips losslessly.
type Action struct {
	// Type is the kind of action (required).
	Type Type `json:"type"`

	// Selector identifies the target element (click, type).
	Selector string `json:"selector,omitempty"`

	// Value carries the action payload: text to type, URL to open,
	// or scroll direction.
	Value string `json:"value,omitempty"`
}

// String returns a compact human-readable form used in logs and prompts.
func (a Action) String() string {
	parts := []string{string(a.Type)}
	if a.Selector != "" {
		parts = append(parts, a.Selector)
	}
	if a.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", a.Value))
	}
	return strings.Join(parts, " ")
}

// Clone returns a copy of the sequence so stored patterns cannot be
// mutated through a retained caller slice.
func Clone(actions []Action) []Action {
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}
