// Package suggestions renders the selectable list of writing suggestions.
package suggestions

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the suggestions list
type Styles struct {
	Box      lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Loading  lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#282A36")).
			Background(lipgloss.Color("#8BE9FD")),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}

// Model represents the suggestions state
type Model struct {
	items    []string
	selected int
	focused  bool
	loading  string
	maxShow  int
	width    int
	styles   Styles
	render   func(string) string
}

// New creates a new suggestions model
func New() Model {
	return Model{
		items:   []string{},
		maxShow: 5,
		styles:  DefaultStyles(),
	}
}

// SetItems replaces the items. The selection is kept when still in range.
func (m Model) SetItems(items []string) Model {
	m.items = items
	if m.selected >= len(items) || m.selected < 0 {
		m.selected = 0
	}
	return m
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetMaxShow sets maximum visible items
func (m Model) SetMaxShow(n int) Model {
	if n > 0 {
		m.maxShow = n
	}
	return m
}

// SetWidth sets the outer width of the box; 0 means fit content.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// SetRenderer sets a function applied to each item's text before styling
// unselected rows, e.g. a syntax highlighter.
func (m Model) SetRenderer(fn func(string) string) Model {
	m.render = fn
	return m
}

// SetLoading shows msg above the list while non-empty.
func (m Model) SetLoading(msg string) Model {
	m.loading = msg
	return m
}

// Focus gives the list keyboard focus
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus and resets the selection
func (m Model) Blur() Model {
	m.focused = false
	m.selected = 0
	return m
}

// Focused returns focus state
func (m Model) Focused() bool {
	return m.focused
}

// Selected returns the selected index
func (m Model) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item string
func (m Model) SelectedItem() string {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected]
	}
	return ""
}

// Items returns all items
func (m Model) Items() []string {
	return m.items
}

// Len returns number of items
func (m Model) Len() int {
	return len(m.items)
}

// MoveUp moves selection up
func (m Model) MoveUp() Model {
	if m.selected > 0 {
		m.selected--
	}
	return m
}

// MoveDown moves selection down
func (m Model) MoveDown() Model {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
	return m
}

// Update handles navigation keys while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k", "ctrl+p":
			m = m.MoveUp()
		case "down", "j", "ctrl+n":
			m = m.MoveDown()
		}
	}
	return m, nil
}

// View renders the list, or nothing when there is nothing to show.
func (m Model) View() string {
	if len(m.items) == 0 && m.loading == "" {
		return ""
	}

	var views []string
	if m.loading != "" {
		views = append(views, m.styles.Loading.Render(m.loading))
	}

	if len(m.items) > 0 {
		views = append(views, m.styles.Title.Render("Suggestions:"))
	}

	// Calculate visible window
	start := 0
	if m.selected > m.maxShow/2 {
		start = m.selected - m.maxShow/2
	}
	end := start + m.maxShow
	if end > len(m.items) {
		end = len(m.items)
		start = max(end-m.maxShow, 0)
	}

	for i := start; i < end; i++ {
		item := m.items[i]
		if m.focused && i == m.selected {
			views = append(views, m.styles.Selected.Render("> "+item))
			continue
		}
		if m.render != nil {
			item = m.render(item)
		}
		views = append(views, m.styles.Item.Render("  "+item))
	}

	box := m.styles.Box
	if m.width > 0 {
		box = box.Width(m.width - box.GetHorizontalFrameSize())
	}
	return box.Render(strings.Join(views, "\n"))
}
