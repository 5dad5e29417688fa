package assist

import "fmt"

const suggestionTemplate = `Provide concise writing suggestions for this text: "%s".
List up to 3 improvements in short phrases. Format as bullet points.
Highlight grammatical errors if present.`

const enhanceTemplate = `Enhance this text to be more %s while preserving its meaning:
"%s".
Improve grammar, clarity, and overall quality.
Return only the enhanced text without additional commentary.`

// SuggestionPrompt builds the prompt asking for up to three short improvement bullets.
func SuggestionPrompt(text string) string {
	return fmt.Sprintf(suggestionTemplate, text)
}

// EnhancePrompt builds the prompt asking for a rewrite of text in the given style.
func EnhancePrompt(text string, level Level) string {
	if level == "" {
		level = LevelDefault
	}
	return fmt.Sprintf(enhanceTemplate, level, text)
}
