// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/ui/components/popup"
	"github.com/nhath/quill/internal/ui/components/suggestions"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color

	// Styles
	StatusBarStyle          lipgloss.Style
	ProviderStyle           lipgloss.Style
	LevelStyle              lipgloss.Style
	InputStyle              lipgloss.Style
	InputFocusedStyle       lipgloss.Style
	TitleStyle              lipgloss.Style
	MetaStyle               lipgloss.Style
	SuggestionBoxStyle      lipgloss.Style
	SuggestionItemStyle     lipgloss.Style
	SuggestionSelectedStyle lipgloss.Style
	EnhancedBoxStyle        lipgloss.Style
	PopupStyle              lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func WarningColor() lipgloss.Color   { return warningColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func BgSecondary() lipgloss.Color    { return bgSecondary }
func CardBg() lipgloss.Color         { return cardBg }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	ProviderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(accentColor).
		Foreground(bgPrimary)

	LevelStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint).
		Padding(0, 1)

	InputFocusedStyle = InputStyle.
		BorderForeground(accentColor)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(highlightColor)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	SuggestionBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint).
		Padding(0, 1)

	SuggestionItemStyle = lipgloss.NewStyle().
		Foreground(textPrimary)

	SuggestionSelectedStyle = lipgloss.NewStyle().
		Foreground(bgPrimary).
		Background(highlightColor).
		Bold(true)

	EnhancedBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(successColor).
		Padding(0, 1)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Background(bgPrimary).
		Padding(1, 2)
}

// suggestionStyles maps the theme onto the suggestions component.
func suggestionStyles() suggestions.Styles {
	return suggestions.Styles{
		Box:      SuggestionBoxStyle,
		Title:    TitleStyle,
		Item:     SuggestionItemStyle,
		Selected: SuggestionSelectedStyle,
		Loading:  MetaStyle,
	}
}

// popupStyles maps the theme onto the popup component.
func popupStyles() popup.Styles {
	return popup.Styles{
		Box:    PopupStyle,
		Header: TitleStyle,
		Body:   lipgloss.NewStyle().Foreground(textPrimary),
		Footer: MetaStyle,
	}
}
