package summarizer

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

const (
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultChatModel  = openai.GPT3Dot5Turbo
)

// OpenAICompleter talks to any OpenAI-compatible chat completions API.
type OpenAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAICompleter(apiKey, baseURL, model string, temperature float32) *OpenAICompleter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from model")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAICompleter) Close() error {
	return nil
}

// OpenAIFactory returns a Factory for OpenAI-compatible backends.
func OpenAIFactory(baseURL, model string, temperature float32) Factory {
	return func(_ context.Context, apiKey string) (Completer, error) {
		if apiKey == "" {
			return nil, errors.New("missing API key")
		}
		return NewOpenAICompleter(apiKey, baseURL, model, temperature), nil
	}
}
