package service

import (
	"context"

	"github.com/ahmednasr/askme/internal/gemini"
)

// GeminiLLM calls the generateContent REST endpoint directly.
type GeminiLLM struct {
	client *gemini.Client
}

// NewGeminiLLM wraps a REST client.
func NewGeminiLLM(client *gemini.Client) *GeminiLLM {
	return &GeminiLLM{client: client}
}

// GenerateResponse returns candidates[0].content.parts[0].text.
func (l *GeminiLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := l.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	text, reason := resp.Text()
	if reason != "" {
		return "", &ExtractionError{Provider: "gemini", Reason: reason}
	}
	return text, nil
}
