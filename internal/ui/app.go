// internal/ui/app.go
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/nhath/quill/internal/activity"
	eztable "github.com/nhath/quill/internal/ui/components/table"
	"github.com/nhath/quill/internal/ui/highlight"
)

// Update handles messages and updates model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DebounceMsg:
		if !m.session.Due(msg.ID) {
			// Superseded by a later edit
			return m, nil
		}
		text := m.session.BeginSuggest()
		m.suggestReq = m.activity.Start(activity.KindSuggest, text)
		log.Debug("fetching suggestions", "request", m.suggestReq, "chars", len(text))
		m.suggestions = m.suggestions.SetLoading(m.spinner.View() + " Generating suggestions...")
		return m, tea.Batch(m.fetchSuggestionsCmd(m.suggestReq, text), m.spinner.Tick)

	case SuggestionsMsg:
		m.finishActivity(msg.RequestID, len(msg.Items), msg.Err)
		if msg.Err != nil {
			log.Error("suggestion request failed", "request", msg.RequestID, "err", msg.Err)
		} else if msg.Input != m.session.Input {
			// Applied anyway; recorded for the activity log only.
			log.Debug("suggestions arrived for superseded input", "request", msg.RequestID)
			_ = m.activity.MarkStale(msg.RequestID)
		}
		m.session.SuggestDone(msg.Items, msg.Err)
		m = m.syncSuggestions()
		return m, nil

	case EnhancedMsg:
		n := 1
		if msg.Err != nil {
			n = 0
			log.Error("enhance request failed", "request", msg.RequestID, "err", msg.Err)
		}
		m.finishActivity(msg.RequestID, n, msg.Err)
		m.session.EnhanceDone(msg.Text, msg.Err)
		m = m.syncEnhanced()
		return m, nil

	case ClipboardMsg:
		if msg.Err != nil {
			log.Warn("clipboard write failed", "err", msg.Err)
			m.statusMsg = "Clipboard unavailable"
		} else {
			m.statusMsg = "Copied enhanced text"
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Suggesting && !m.session.Enhancing {
			// Let the tick chain end while idle
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.session.Suggesting {
			m.suggestions = m.suggestions.SetLoading(m.spinner.View() + " Generating suggestions...")
		}
		return m, cmd
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// finishActivity records an outcome, refreshing the activity popup if open.
func (m *Model) finishActivity(id int64, results int, err error) {
	if ferr := m.activity.Finish(id, results, err); ferr != nil {
		log.Warn("activity entry missing", "request", id, "err", ferr)
	}
	if m.activityPopup.Visible() {
		m.refreshActivity()
	}
}

// edit pushes the editor value into the session and schedules the debounce.
func (m Model) edit(text string) (Model, tea.Cmd) {
	id, ok := m.session.Edit(text)
	m = m.syncSuggestions()
	if !ok {
		return m, nil
	}
	return m, debounceCmd(m.config.Debounce(), id)
}

// replaceInput sets the editor text from an action (apply, accept) and treats
// it as an edit.
func (m Model) replaceInput(id int, ok bool) (Model, tea.Cmd) {
	m.editor.SetValue(m.session.Input)
	m.editor.CursorEnd()
	m = m.focusEditor()
	m = m.syncSuggestions()
	if !ok {
		return m, nil
	}
	return m, debounceCmd(m.config.Debounce(), id)
}

// syncSuggestions copies session suggestions into the list component.
func (m Model) syncSuggestions() Model {
	m.suggestions = m.suggestions.SetItems(m.session.Suggestions)
	if !m.session.Suggesting {
		m.suggestions = m.suggestions.SetLoading("")
	}
	if m.focus == FocusSuggestions && m.suggestions.Len() == 0 {
		m = m.focusEditor()
	}
	return m
}

// syncEnhanced renders the enhanced text into the viewport from the top.
func (m Model) syncEnhanced() Model {
	m = m.wrapEnhanced()
	m.enhanced.GotoTop()
	return m
}

// wrapEnhanced refills the viewport with the enhanced text wrapped to its
// width, so every wrapped row is a line the viewport can scroll to.
func (m Model) wrapEnhanced() Model {
	if m.session.Enhanced == "" {
		m.enhanced.SetContent("")
		return m
	}
	rendered := highlight.Markdown(m.session.Enhanced, m.chromaStyle())
	m.enhanced.SetContent(ansi.Wrap(rendered, m.enhanced.Width, ""))
	return m
}

func (m Model) chromaStyle() string {
	return chromaStyleFor(m.config.ThemeName)
}

func (m Model) focusEditor() Model {
	m.focus = FocusEditor
	m.suggestions = m.suggestions.Blur()
	m.editor.Focus()
	return m
}

func (m Model) focusSuggestions() Model {
	if m.suggestions.Len() == 0 {
		return m
	}
	m.focus = FocusSuggestions
	m.suggestions = m.suggestions.Focus()
	m.editor.Blur()
	return m
}

// refreshActivity rebuilds the activity table from the store.
func (m *Model) refreshActivity() {
	m.activityTable = eztable.FromActivity(m.activity.List(0))
	m.activityPopup = m.activityPopup.SetContent(m.activityContent())
}

func (m Model) activityContent() string {
	return m.activityTable.View() + "\n" + MetaStyle.Render(eztable.Summary(m.activity.List(0)))
}

func (m Model) resize(w, h int) Model {
	m.width = w
	m.height = h

	inner := max(w-InputStyle.GetHorizontalFrameSize(), 20)
	m.editor.SetWidth(inner)
	m.suggestions = m.suggestions.SetWidth(w).SetMaxShow(max((h-16)/2, 3))
	m.enhanced.Width = max(w-EnhancedBoxStyle.GetHorizontalFrameSize(), 20)
	m.enhanced.Height = max(h/4, 3)
	m = m.wrapEnhanced()

	m.helpPopup = m.helpPopup.SetScreenSize(w, h)
	m.activityPopup = m.activityPopup.SetScreenSize(w, h)
	return m
}
