// Package session holds the writing session state shared by the UI event
// handlers. Every transition is synchronous and free of I/O; the UI layer
// owns timers and network calls and reports their outcomes back here.
package session

import (
	"strings"

	"github.com/nhath/quill/internal/assist"
)

// State is the whole mutable state of one writing session.
type State struct {
	Input       string
	Suggestions []string
	Enhanced    string
	Level       assist.Level
	Err         string

	// In-flight flags, one per flow.
	Suggesting bool
	Enhancing  bool

	debounceID int
}

// New returns an empty session using level for enhancements.
func New(level assist.Level) State {
	if level == "" {
		level = assist.LevelDefault
	}
	return State{Level: level}
}

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// DebounceID is the generation of the most recent edit.
func (s *State) DebounceID() int {
	return s.debounceID
}

// Edit records a new input value and starts a new quiet period. Any pending
// fetch from an earlier edit is superseded. For blank input the suggestions
// are cleared at once and ok is false: nothing should be scheduled.
func (s *State) Edit(text string) (id int, ok bool) {
	s.Input = text
	s.debounceID++
	if IsBlank(text) {
		s.Suggestions = nil
		return 0, false
	}
	return s.debounceID, true
}

// Due reports whether the quiet period that ended for id should dispatch a
// suggestion fetch, i.e. no edit happened since and the input is not blank.
func (s *State) Due(id int) bool {
	return id == s.debounceID && !IsBlank(s.Input)
}

// BeginSuggest marks a fetch as dispatched and returns the text to send.
func (s *State) BeginSuggest() string {
	s.Suggesting = true
	return s.Input
}

// SuggestDone applies the outcome of a fetch. Results are applied even if the
// input changed while the request was in flight.
func (s *State) SuggestDone(items []string, err error) {
	s.Suggesting = false
	if err != nil {
		s.Err = assist.SuggestFailedMessage
		return
	}
	s.Suggestions = items
	s.Err = ""
}

// ApplySuggestion replaces the input with the chosen suggestion and clears the
// list. The replacement is an ordinary edit, so the caller schedules the
// returned debounce generation like any other.
func (s *State) ApplySuggestion(suggestion string) (id int, ok bool) {
	id, ok = s.Edit(strings.TrimSpace(suggestion))
	s.Suggestions = nil
	return id, ok
}

// CanEnhance reports whether the enhance action is enabled.
func (s *State) CanEnhance() bool {
	return !s.Enhancing && !IsBlank(s.Input)
}

// BeginEnhance marks an enhancement as dispatched. It returns ok=false and
// changes nothing when the action is disabled.
func (s *State) BeginEnhance() (text string, level assist.Level, ok bool) {
	if !s.CanEnhance() {
		return "", "", false
	}
	s.Enhancing = true
	return s.Input, s.Level, true
}

// EnhanceDone applies the outcome of an enhancement.
func (s *State) EnhanceDone(text string, err error) {
	s.Enhancing = false
	if err != nil {
		s.Err = assist.EnhanceFailedMessage
		return
	}
	s.Enhanced = text
	s.Err = ""
}

// AcceptEnhanced copies the enhanced text into the input as an edit.
// Nothing happens when there is no enhanced text.
func (s *State) AcceptEnhanced() (id int, ok bool) {
	if s.Enhanced == "" {
		return 0, false
	}
	return s.Edit(s.Enhanced)
}

// CycleLevel moves to the next enhancement level.
func (s *State) CycleLevel() assist.Level {
	s.Level = s.Level.Next()
	return s.Level
}
