// Package popup provides a reusable modal popup component.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// Styles for the popup
type Styles struct {
	Box    lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8F8F2")),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}

// Model represents the popup state
type Model struct {
	visible   bool
	title     string
	content   string
	footer    string
	width     int
	maxWidth  int
	maxHeight int
	styles    Styles
}

// New creates a new popup model
func New() Model {
	return Model{
		maxWidth: 120,
		styles:   DefaultStyles(),
	}
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetWidth fixes the box width; 0 sizes it to the content.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// SetScreenSize bounds the popup to the screen
func (m Model) SetScreenSize(w, h int) Model {
	m.maxWidth = min(120, w-4)
	m.maxHeight = h - 4
	return m
}

// Show makes the popup visible with content
func (m Model) Show(title, content, footer string) Model {
	m.visible = true
	m.title = title
	m.content = content
	m.footer = footer
	return m
}

// SetContent replaces the body of a visible popup.
func (m Model) SetContent(content string) Model {
	m.content = content
	return m
}

// Hide hides the popup
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// Visible returns visibility state
func (m Model) Visible() bool {
	return m.visible
}

// Update closes the popup on esc or q.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc":
			m.visible = false
		}
	}

	return m, nil
}

// View renders the popup box
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.Header.Render(m.title))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Body.Render(m.content))

	if m.footer != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render(m.footer))
	}

	box := m.styles.Box
	if m.width > 0 {
		box = box.Width(min(m.width, m.maxWidth))
	} else if m.maxWidth > 0 {
		box = box.MaxWidth(m.maxWidth)
	}
	if m.maxHeight > 0 {
		box = box.MaxHeight(m.maxHeight)
	}
	return box.Render(b.String())
}

// RenderOverlay renders the popup centered on top of main
func (m Model) RenderOverlay(main string) string {
	if !m.visible {
		return main
	}
	return overlay.Composite(m.View(), main, overlay.Center, overlay.Center, 0, 0)
}
