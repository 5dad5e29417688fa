// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/nhath/quill/internal/activity"
	"github.com/nhath/quill/internal/assist"
	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/session"
	"github.com/nhath/quill/internal/ui/components/popup"
	"github.com/nhath/quill/internal/ui/components/suggestions"
)

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	width, height int
	config        *config.Config
	assistant     *assist.Assistant
	activity      *activity.Store
	session       session.State
	focus         Focus

	// Components
	editor      textarea.Model
	suggestions suggestions.Model
	enhanced    viewport.Model
	spinner     spinner.Model

	// Popups
	helpPopup     popup.Model
	activityPopup popup.Model
	activityTable table.Model

	// Activity IDs of the most recent dispatch per flow
	suggestReq int64
	enhanceReq int64

	// Status
	statusMsg string
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, asst *assist.Assistant, store *activity.Store) Model {
	InitStyles(cfg.Theme)

	ti := textarea.New()
	ti.Placeholder = "Start writing... suggestions appear after a pause."
	ti.Focus()
	ti.CharLimit = 10000
	ti.SetHeight(6)
	ti.SetWidth(80)
	ti.ShowLineNumbers = false
	// Remove cursor line background - keep it transparent
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()

	vp := viewport.New(80, 6)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor())

	if store == nil {
		store = activity.NewStore(activity.DefaultLimit)
	}

	return Model{
		config:        cfg,
		assistant:     asst,
		activity:      store,
		session:       session.New(cfg.Level()),
		focus:         FocusEditor,
		editor:        ti,
		suggestions:   suggestions.New().SetStyles(suggestionStyles()),
		enhanced:      vp,
		spinner:       sp,
		helpPopup:     popup.New().SetStyles(popupStyles()).SetWidth(56),
		activityPopup: popup.New().SetStyles(popupStyles()),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Session returns a copy of the current writing session.
func (m Model) Session() session.State {
	return m.session
}

// Focus returns the focused pane.
func (m Model) Focus() Focus {
	return m.focus
}
