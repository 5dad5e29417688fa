// Package highlight colors model output for the terminal.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// ANSI foreground color codes (no background, no reset issues)
const (
	fgCyan   = "\x1b[38;5;110m" // Bullets - light cyan
	fgGreen  = "\x1b[38;5;150m" // Quoted text - green
	fgOrange = "\x1b[38;5;209m" // Arrows - orange
	fgReset  = "\x1b[39m"       // Reset foreground only (not all attributes)
)

// Markdown renders src with chroma's markdown lexer in the given style.
// On any highlighting error the plain text is returned.
func Markdown(src, style string) string {
	if src == "" {
		return ""
	}
	var b strings.Builder
	if err := quick.Highlight(&b, src, "markdown", "terminal256", style); err != nil {
		return src
	}
	return strings.TrimRight(b.String(), "\n")
}

// Suggestion colors one suggestion line: a leading list marker, quoted spans
// such as 'teh', and "->" arrows. Only foreground codes are emitted so the
// line can sit inside a styled box.
func Suggestion(s string) string {
	var result strings.Builder
	i := 0

	// List marker
	trimmed := strings.TrimLeft(s, " ")
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(trimmed, marker) {
			lead := len(s) - len(trimmed)
			result.WriteString(s[:lead])
			result.WriteString(fgCyan)
			result.WriteString(marker)
			result.WriteString(fgReset)
			i = lead + len(marker)
			break
		}
	}

	for i < len(s) {
		c := s[i]

		if strings.HasPrefix(s[i:], "->") {
			result.WriteString(fgOrange)
			result.WriteString("->")
			result.WriteString(fgReset)
			i += 2
			continue
		}

		// Quoted spans. An apostrophe inside a word ("don't") is not a quote.
		if (c == '\'' || c == '"') && (i == 0 || s[i-1] == ' ' || s[i-1] == '(') {
			j := strings.IndexByte(s[i+1:], c)
			if j >= 0 {
				end := i + 1 + j + 1
				result.WriteString(fgGreen)
				result.WriteString(s[i:end])
				result.WriteString(fgReset)
				i = end
				continue
			}
		}

		result.WriteByte(c)
		i++
	}

	return result.String()
}
