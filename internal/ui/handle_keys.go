// internal/ui/handle_keys.go
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhath/quill/internal/activity"
)

// handleKey routes a keystroke: popups first, then global actions, then the
// focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys

	if matchKey(msg, keys.Quit) {
		return m, tea.Quit
	}

	if m.activityPopup.Visible() {
		return m.handleActivityPopup(msg)
	}
	if m.helpPopup.Visible() {
		if matchKey(msg, keys.Help) {
			m.helpPopup = m.helpPopup.Hide()
			return m, nil
		}
		m.helpPopup, _ = m.helpPopup.Update(msg)
		return m, nil
	}

	m.statusMsg = ""

	switch {
	case matchKey(msg, keys.Help):
		m.helpPopup = m.helpPopup.Show("Keyboard Shortcuts", m.helpContent(), "Press Esc or q to close")
		return m, nil

	case matchKey(msg, keys.Activity):
		m.activityPopup = m.activityPopup.Show("Request Activity", "", "Esc to close")
		m.refreshActivity()
		return m, nil

	case matchKey(msg, keys.Enhance):
		return m.startEnhance()

	case matchKey(msg, keys.Level):
		level := m.session.CycleLevel()
		m.statusMsg = "Enhancement level: " + level.String()
		return m, nil

	case matchKey(msg, keys.Copy):
		if m.session.Enhanced == "" {
			return m, nil
		}
		return m, copyToClipboardCmd(m.session.Enhanced)

	case matchKey(msg, keys.Accept):
		if m.session.Enhanced == "" {
			return m, nil
		}
		id, ok := m.session.AcceptEnhanced()
		return m.replaceInput(id, ok)

	case matchKey(msg, keys.ScrollUp):
		m.enhanced.HalfPageUp()
		return m, nil

	case matchKey(msg, keys.ScrollDown):
		m.enhanced.HalfPageDown()
		return m, nil
	}

	if m.focus == FocusSuggestions {
		return m.handleSuggestionKeys(msg)
	}
	return m.handleEditorKeys(msg)
}

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matchKey(msg, m.config.Keys.Focus) && m.suggestions.Len() > 0 {
		m = m.focusSuggestions()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if v := m.editor.Value(); v != m.session.Input {
		var debounce tea.Cmd
		m, debounce = m.edit(v)
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

func (m Model) handleSuggestionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys

	switch {
	case matchKey(msg, keys.Back), matchKey(msg, keys.Focus):
		m = m.focusEditor()
		return m, nil

	case matchKey(msg, keys.Apply):
		chosen := m.suggestions.SelectedItem()
		if chosen == "" {
			return m, nil
		}
		log.Debug("applying suggestion", "index", m.suggestions.Selected())
		id, ok := m.session.ApplySuggestion(chosen)
		return m.replaceInput(id, ok)
	}

	var cmd tea.Cmd
	m.suggestions, cmd = m.suggestions.Update(msg)
	return m, cmd
}

func (m Model) handleActivityPopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if matchKey(msg, m.config.Keys.Activity) || matchKey(msg, m.config.Keys.Back) || msg.String() == "q" {
		m.activityPopup = m.activityPopup.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.activityTable, cmd = m.activityTable.Update(msg)
	m.activityPopup = m.activityPopup.SetContent(m.activityContent())
	return m, cmd
}

// startEnhance dispatches an enhancement when the action is enabled.
func (m Model) startEnhance() (tea.Model, tea.Cmd) {
	text, level, ok := m.session.BeginEnhance()
	if !ok {
		return m, nil
	}
	m.enhanceReq = m.activity.Start(activity.KindEnhance, text)
	log.Debug("enhancing", "request", m.enhanceReq, "level", level)
	return m, tea.Batch(m.enhanceCmd(m.enhanceReq, text, level), m.spinner.Tick)
}
