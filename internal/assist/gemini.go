package assist

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	Model  string
	client *genai.Client
}

// GeminiOption adjusts the genai client config before the client is built.
type GeminiOption func(*genai.ClientConfig)

// WithGeminiEndpoint sends requests to baseURL instead of the public API.
func WithGeminiEndpoint(baseURL string) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = baseURL
	}
}

// NewGeminiGenerator creates a Gemini client for apiKey. An empty model
// falls back to DefaultGeminiModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiGenerator{Model: model, client: client}, nil
}

func (g *GeminiGenerator) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.Model)
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: empty response candidates")
	}
	return resp.Text(), nil
}
