package assist

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "bullets with trailing newline",
			raw:  "- Fix 'teh' to 'the'\n- Add more detail\n",
			want: []string{"- Fix 'teh' to 'the'", "- Add more detail"},
		},
		{
			name: "blank lines and padding",
			raw:  "\n  * one  \n\n\t* two\n   \n",
			want: []string{"* one", "* two"},
		},
		{
			name: "crlf line endings",
			raw:  "a\r\nb\r\n",
			want: []string{"a", "b"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
		{
			name: "more than three lines kept",
			raw:  "Suggestions:\n- a\n- b\n- c",
			want: []string{"Suggestions:", "- a", "- b", "- c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSuggestions(tt.raw))
		})
	}
}

func TestParseSuggestionsProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("no empty or untrimmed lines", prop.ForAll(
		func(lines []string) bool {
			for _, s := range ParseSuggestions(strings.Join(lines, "\n")) {
				if s == "" || s != strings.TrimSpace(s) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("non-blank alphanumeric lines survive in order", prop.ForAll(
		func(lines []string) bool {
			var want []string
			for _, l := range lines {
				if l != "" {
					want = append(want, l)
				}
			}
			got := ParseSuggestions("  " + strings.Join(lines, "  \n  ") + "\n")
			if len(got) != len(want) {
				return false
			}
			for i := range want {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
