// Package assist talks to the external language model: it builds the
// suggestion and enhancement prompts, sends them through a Generator backend
// and turns the replies into values the UI can show.
package assist

import "context"

// Generator is the one capability quill needs from a model backend:
// generate text from a free-form prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted in config and on the command line.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// DefaultGeminiModel is used when no model is configured for the gemini provider.
const DefaultGeminiModel = "gemini-1.5-flash"

// DefaultOpenAIModel is used when no model is configured for the openai provider.
const DefaultOpenAIModel = "gpt-4o-mini"
