package service

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAILLM talks to any OpenAI‑compatible chat completion endpoint.
type OpenAILLM struct {
	client *openai.Client
	model  string
}

// NewOpenAILLM builds a client; an empty baseURL keeps the OpenAI default.
func NewOpenAILLM(apiKey, baseURL, model string) *OpenAILLM {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAILLM{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// GenerateResponse sends prompt as one user message.
func (l *OpenAILLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", &ExtractionError{Provider: "openai", Reason: "no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
