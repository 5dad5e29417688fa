// internal/ui/render.go
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/quill/internal/ui/highlight"
	"github.com/nhath/quill/internal/ui/icons"
)

// View renders the UI
func (m Model) View() string {
	sections := []string{
		m.renderInput(),
	}

	if list := m.renderSuggestions(); list != "" {
		sections = append(sections, list)
	}
	if enhanced := m.renderEnhanced(); enhanced != "" {
		sections = append(sections, enhanced)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := lipgloss.JoinVertical(lipgloss.Left, m.renderStatusBar(), m.renderHelp())

	main := body
	if m.height > 0 {
		gap := m.height - lipgloss.Height(body) - lipgloss.Height(footer)
		if gap > 0 {
			main += strings.Repeat("\n", gap)
		}
	}
	main = lipgloss.JoinVertical(lipgloss.Left, main, footer)

	main = m.helpPopup.RenderOverlay(main)
	main = m.activityPopup.RenderOverlay(main)
	return main
}

func (m Model) renderInput() string {
	style := InputStyle
	if m.focus == FocusEditor {
		style = InputFocusedStyle
	}
	title := TitleStyle.Render(icons.IconSuggest + " Draft")
	return lipgloss.JoinVertical(lipgloss.Left, title, style.Render(m.editor.View()))
}

func (m Model) renderSuggestions() string {
	return m.suggestions.SetRenderer(highlight.Suggestion).View()
}

func (m Model) renderEnhanced() string {
	if m.session.Enhanced == "" {
		return ""
	}
	title := TitleStyle.Render(fmt.Sprintf("%s Enhanced (%s)", icons.IconEnhance, m.session.Level))
	if m.enhanced.TotalLineCount() > m.enhanced.Height {
		keys := m.config.Keys
		title += MetaStyle.Render(fmt.Sprintf("  %s/%s %3.f%%",
			firstKey(keys.ScrollUp, "pgup"), firstKey(keys.ScrollDown, "pgdown"), m.enhanced.ScrollPercent()*100))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, EnhancedBoxStyle.Render(m.enhanced.View()))
}

func (m Model) renderStatusBar() string {
	var parts []string

	// 1. Focus
	parts = append(parts, ProviderStyle.Render(string(m.focus)))

	// 2. Provider and level
	name := "none"
	if m.assistant != nil {
		name = m.assistant.Name()
	}
	parts = append(parts, LevelStyle.Render(fmt.Sprintf("%s %s", icons.ProviderIcon(m.config.Provider), name)))
	parts = append(parts, LevelStyle.Render(fmt.Sprintf("%s %s", icons.IconLevel, m.session.Level)))

	// 3. Enhance button state
	enhance := "Enhance"
	switch {
	case m.session.Enhancing:
		enhance = m.spinner.View() + " Enhancing..."
	case !m.session.CanEnhance():
		enhance = lipgloss.NewStyle().Foreground(TextFaint()).Render("Enhance")
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(AccentColor()).Padding(0, 1).Render(enhance))

	// 4. Status message (success/info)
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().Background(SuccessColor()).Foreground(BgPrimary()).Padding(0, 1)
		parts = append(parts, statusStyle.Render(icons.IconSuccess+" "+m.statusMsg))
	}

	// 5. Error indicator
	if m.session.Err != "" {
		errorStyle := lipgloss.NewStyle().Background(ErrorColor()).Foreground(TextPrimary()).Padding(0, 1)
		parts = append(parts, errorStyle.Render(icons.IconError+" "+m.session.Err))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).Render(content)
}

func (m Model) renderHelp() string {
	// Style for key hints - makes keys look like keyboard buttons
	keyStyle := lipgloss.NewStyle().
		Foreground(TextPrimary()).
		Background(CardBg()).
		Padding(0, 1).
		Bold(true)

	sepStyle := lipgloss.NewStyle().Foreground(TextFaint())
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary())

	hint := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(" "+desc)
	}

	sep := sepStyle.Render("  ")
	keys := m.config.Keys

	var hints []string
	if m.focus == FocusSuggestions {
		hints = append(hints,
			hint("↑/↓", "Choose"),
			hint(firstKey(keys.Apply, "enter"), "Apply"),
			hint(firstKey(keys.Back, "esc"), "Back"),
		)
	} else {
		hints = append(hints,
			hint(firstKey(keys.Enhance, "ctrl+e"), "Enhance"),
			hint(firstKey(keys.Level, "ctrl+l"), "Level"),
		)
		if m.suggestions.Len() > 0 {
			hints = append(hints, hint(firstKey(keys.Focus, "tab"), "Suggestions"))
		}
		if m.session.Enhanced != "" {
			hints = append(hints,
				hint(firstKey(keys.Accept, "ctrl+o"), "Use"),
				hint(firstKey(keys.Copy, "ctrl+y"), "Copy"),
			)
		}
	}

	hints = append(hints,
		hint(firstKey(keys.Help, "f1"), "Help"),
		hint(firstKey(keys.Quit, "ctrl+c"), "Quit"),
	)

	return strings.Join(hints, sep)
}

// helpContent is the body of the keyboard shortcuts popup.
func (m Model) helpContent() string {
	var content strings.Builder
	keys := m.config.Keys

	section := func(name string, bindings []struct{ key, desc string }) {
		header := lipgloss.NewStyle().Bold(true).Foreground(HighlightColor()).Render(name)
		content.WriteString(header + "\n")
		for _, b := range bindings {
			keyStyle := lipgloss.NewStyle().Foreground(SuccessColor()).Width(15)
			descStyle := lipgloss.NewStyle().Foreground(TextSecondary())
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}

	section("Writing", []struct{ key, desc string }{
		{strings.Join(keys.Enhance, "/"), "Enhance the draft"},
		{strings.Join(keys.Level, "/"), "Cycle enhancement level"},
		{strings.Join(keys.Accept, "/"), "Replace draft with enhanced text"},
		{strings.Join(keys.Copy, "/"), "Copy enhanced text"},
		{strings.Join(keys.ScrollUp, "/") + " " + strings.Join(keys.ScrollDown, "/"), "Scroll enhanced text"},
	})

	section("Suggestions", []struct{ key, desc string }{
		{strings.Join(keys.Focus, "/"), "Move to the suggestion list"},
		{"↑/↓", "Choose a suggestion"},
		{strings.Join(keys.Apply, "/"), "Apply the suggestion"},
		{strings.Join(keys.Back, "/"), "Back to the draft"},
	})

	section("Other", []struct{ key, desc string }{
		{strings.Join(keys.Activity, "/"), "Request activity"},
		{strings.Join(keys.Help, "/"), "Show this help"},
		{strings.Join(keys.Quit, "/"), "Quit"},
	})

	return strings.TrimRight(content.String(), "\n")
}
