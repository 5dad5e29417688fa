// internal/ui/model_messages.go
// Message types for the Bubble Tea update loop
package ui

// DebounceMsg fires when the quiet period after edit ID ends.
type DebounceMsg struct {
	ID int
}

// SuggestionsMsg carries the outcome of a suggestion fetch.
type SuggestionsMsg struct {
	RequestID int64
	Input     string
	Items     []string
	Err       error
}

// EnhancedMsg carries the outcome of an enhancement.
type EnhancedMsg struct {
	RequestID int64
	Text      string
	Err       error
}

// ClipboardMsg reports a finished clipboard write.
type ClipboardMsg struct {
	Err error
}
