package summary

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAISummarizer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAISummarizer creates a summarizer backed by any OpenAI-compatible API.
// Set baseURL to a non-empty string to point at a local server (LM Studio,
// llama.cpp, Ollama's /v1 endpoint, etc.); leave empty for api.openai.com.
func NewOpenAISummarizer(baseURL, apiKey, model string, timeout time.Duration) *OpenAISummarizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAISummarizer{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// Summarize sends the filled prompt as a single user-role message and
// returns the first choice's text. An empty choice list is a failure.
func (o *OpenAISummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %q", o.model)
	}

	return resp.Choices[0].Message.Content, nil
}
