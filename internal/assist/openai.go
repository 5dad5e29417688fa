package assist

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator talks to any OpenAI-compatible chat completions endpoint:
// OpenAI itself, Ollama or llama-server.
type OpenAIGenerator struct {
	Model  string
	client openai.Client
}

// NewOpenAIGenerator builds a client. baseURL may be empty for api.openai.com.
// Local servers usually accept an empty apiKey.
func NewOpenAIGenerator(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIGenerator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	clientOpts := []option.RequestOption{}
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIGenerator{
		Model:  model,
		client: openai.NewClient(clientOpts...),
	}
}

func (o *OpenAIGenerator) Name() string {
	return fmt.Sprintf("OpenAI-compatible (%s)", o.Model)
}

func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
