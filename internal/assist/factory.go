package assist

import (
	"context"
	"fmt"
	"time"
)

// Options selects and configures a backend.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	// MockDelay simulates network latency for the mock provider.
	MockDelay time.Duration
}

// NeedsAPIKey reports whether provider cannot run without a credential.
// The openai provider may point at a local server that takes none.
func NeedsAPIKey(provider string) bool {
	return provider == ProviderGemini || provider == ""
}

// NewGenerator builds the backend named by opts.Provider.
func NewGenerator(ctx context.Context, opts Options) (Generator, error) {
	switch opts.Provider {
	case ProviderGemini, "":
		return NewGeminiGenerator(ctx, opts.APIKey, opts.Model)
	case ProviderOpenAI:
		return NewOpenAIGenerator(opts.APIKey, opts.BaseURL, opts.Model), nil
	case ProviderMock:
		return &MockGenerator{Delay: opts.MockDelay}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", opts.Provider)
	}
}
