package icons

const (
	IconSuggest   = "✎"
	IconEnhance   = "✨"
	IconLevel     = "◆"
	IconSuccess   = "✓"
	IconError     = "⚠"
	IconSelect    = "▸"
	IconBullet    = "•"
	IconSeparator = "  •  "
)

// ProviderIcon returns a short glyph for a generator backend.
func ProviderIcon(provider string) string {
	switch provider {
	case "gemini":
		return "♊"
	case "openai":
		return "◎"
	case "mock":
		return "◌"
	default:
		return IconBullet
	}
}
