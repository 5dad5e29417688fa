package assist

import "strings"

// ParseSuggestions splits a raw model reply into suggestion lines.
// Lines are trimmed, empty ones dropped, order kept.
func ParseSuggestions(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
