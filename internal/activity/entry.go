// internal/activity/entry.go
package activity

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Kind of request.
type Kind string

const (
	KindSuggest Kind = "suggest"
	KindEnhance Kind = "enhance"
)

// Status of a request.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is one dispatched model request.
type Entry struct {
	ID           int64
	Kind         Kind
	Input        string
	StartedAt    time.Time
	DurationMs   int64
	Status       Status
	ErrorMessage string
	// Stale is set when a suggestion result came back for input the user
	// had already changed. The result is applied regardless.
	Stale bool
	// Results is the number of suggestions, or 1 for an enhancement.
	Results int
}

// InputPreview returns the input on one line, truncated to maxLen cells.
func (e *Entry) InputPreview(maxLen int) string {
	q := strings.Join(strings.Fields(e.Input), " ")
	if maxLen > 3 {
		return ansi.Truncate(q, maxLen, "...")
	}
	return q
}
