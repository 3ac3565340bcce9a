package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAILLM uses the official Gemini API SDK.
type GenAILLM struct {
	client *genai.Client
	model  string
}

// NewGenAILLM creates a Gemini API client authenticated by apiKey.
func NewGenAILLM(ctx context.Context, apiKey, model string) (*GenAILLM, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAILLM{client: client, model: model}, nil
}

// GenerateResponse sends prompt as a single user turn.
func (l *GenAILLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	res, err := l.client.Models.GenerateContent(ctx, l.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	return genaiText(res)
}

func genaiText(res *genai.GenerateContentResponse) (string, error) {
	// "Inappropriate" prompts come back without candidates.
	if res == nil || len(res.Candidates) == 0 {
		return "", &ExtractionError{Provider: "genai", Reason: "no candidates"}
	}
	c := res.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return "", &ExtractionError{Provider: "genai", Reason: fmt.Sprintf("empty content (finish reason %q)", c.FinishReason)}
	}
	if c.Content.Parts[0].Text == "" {
		return "", &ExtractionError{Provider: "genai", Reason: "first part has no text"}
	}
	return c.Content.Parts[0].Text, nil
}
