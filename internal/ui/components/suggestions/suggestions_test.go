package suggestions

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNavigation(t *testing.T) {
	m := New().SetItems([]string{"a", "b", "c"}).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Selected(), "clamped at the last item")
	assert.Equal(t, "c", m.SelectedItem())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "b", m.SelectedItem())

	m = m.Blur()
	assert.Equal(t, 0, m.Selected())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected(), "ignores keys while blurred")
}

func TestSetItemsResetsOutOfRangeSelection(t *testing.T) {
	m := New().SetItems([]string{"a", "b", "c"}).Focus().MoveDown().MoveDown()
	m = m.SetItems([]string{"x"})
	assert.Equal(t, "x", m.SelectedItem())

	m = m.SetItems(nil)
	assert.Equal(t, "", m.SelectedItem())
	assert.Equal(t, 0, m.Len())
}

func TestView(t *testing.T) {
	assert.Empty(t, New().View())

	v := New().SetLoading("Generating suggestions...").View()
	assert.Contains(t, v, "Generating suggestions...")

	v = New().SetItems([]string{"- Fix 'teh' to 'the'", "- Add more detail"}).View()
	assert.Contains(t, v, "Suggestions:")
	assert.Contains(t, v, "Fix 'teh' to 'the'")
	assert.Contains(t, v, "Add more detail")
	assert.False(t, strings.Contains(v, "> "), "no cursor while blurred")

	v = New().SetItems([]string{"one", "two"}).Focus().View()
	assert.Contains(t, v, "> one")
}

func TestViewWindow(t *testing.T) {
	items := []string{"i0", "i1", "i2", "i3", "i4", "i5", "i6"}
	m := New().SetItems(items).SetMaxShow(3).Focus()
	for range 6 {
		m = m.MoveDown()
	}
	v := m.View()
	assert.Contains(t, v, "i6")
	assert.NotContains(t, v, "i3")
}
