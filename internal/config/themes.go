package config

// GetThemes returns the built-in palettes by name.
func GetThemes() map[string]Theme {
	return map[string]Theme{
		"nord": {
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
		},
		"dracula": {
			TextPrimary:   "#F8F8F2",
			TextSecondary: "#8BE9FD",
			TextFaint:     "#6272A4",
			Accent:        "#BD93F9",
			Success:       "#50FA7B",
			Error:         "#FF5555",
			Highlight:     "#FF79C6",
			Warning:       "#FFB86C",
			BgPrimary:     "#282A36",
			BgSecondary:   "#343746",
			CardBg:        "#44475A",
		},
		"gruvbox": {
			TextPrimary:   "#EBDBB2",
			TextSecondary: "#83A598",
			TextFaint:     "#928374",
			Accent:        "#FABD2F",
			Success:       "#B8BB26",
			Error:         "#FB4934",
			Highlight:     "#8EC07C",
			Warning:       "#FE8019",
			BgPrimary:     "#282828",
			BgSecondary:   "#3C3836",
			CardBg:        "#504945",
		},
	}
}

// ChromaStyle maps a palette name to the closest chroma style for
// highlighting model output.
func ChromaStyle(themeName string) string {
	switch themeName {
	case "dracula":
		return "dracula"
	case "gruvbox":
		return "gruvbox"
	default:
		return "nord"
	}
}
