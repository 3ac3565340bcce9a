package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// VertexLLM implements the LLM interface using Google's Vertex AI
type VertexLLM struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewVertexLLM creates a new Vertex AI LLM client. credentialsFile may be
// empty to use application default credentials.
func NewVertexLLM(ctx context.Context, projectID, location, modelName, credentialsFile string) (*VertexLLM, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(40)

	return &VertexLLM{
		client: client,
		model:  model,
	}, nil
}

// GenerateResponse generates a response using the Vertex AI model
func (l *VertexLLM) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	resp, err := l.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", &ExtractionError{Provider: "vertex", Reason: "no candidates"}
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", &ExtractionError{Provider: "vertex", Reason: "candidate has no parts"}
	}

	text, ok := content.Parts[0].(genai.Text)
	if !ok {
		return "", &ExtractionError{Provider: "vertex", Reason: fmt.Sprintf("unexpected part type %T", content.Parts[0])}
	}
	if text == "" {
		return "", &ExtractionError{Provider: "vertex", Reason: "first part has no text"}
	}
	return string(text), nil
}

// Close closes the Vertex AI client
func (l *VertexLLM) Close() error {
	return l.client.Close()
}
