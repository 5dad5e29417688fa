// internal/ui/model_helpers.go
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/quill/internal/config"
)

// matchKey checks if a key message matches any of the provided key strings
func matchKey(msg tea.KeyMsg, keys []string) bool {
	keyStr := msg.String()
	for _, k := range keys {
		if k == keyStr {
			return true
		}
	}
	return false
}

// firstKey returns the first binding, or fallback if none are configured.
func firstKey(bindings []string, fallback string) string {
	if len(bindings) > 0 {
		return bindings[0]
	}
	return fallback
}

func chromaStyleFor(themeName string) string {
	return config.ChromaStyle(themeName)
}
