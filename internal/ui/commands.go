// internal/ui/commands.go
// tea.Cmd constructors. Each one runs off the update loop and reports back
// with a message; none of them touch the model.
package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/assist"
)

// debounceCmd fires DebounceMsg{ID: id} after d.
func debounceCmd(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

// fetchSuggestionsCmd asks the assistant for suggestions on text.
func (m Model) fetchSuggestionsCmd(reqID int64, text string) tea.Cmd {
	asst := m.assistant
	timeout := m.config.RequestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		items, err := asst.Suggest(ctx, text)
		return SuggestionsMsg{RequestID: reqID, Input: text, Items: items, Err: err}
	}
}

// enhanceCmd asks the assistant to rewrite text at level.
func (m Model) enhanceCmd(reqID int64, text string, level assist.Level) tea.Cmd {
	asst := m.assistant
	timeout := m.config.RequestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		out, err := asst.Enhance(ctx, text, level)
		return EnhancedMsg{RequestID: reqID, Text: out, Err: err}
	}
}

func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Err: clipboard.WriteAll(text)}
	}
}
