package service

import (
	"context"
	"fmt"
)

// LLM defines the interface for language model interactions.
type LLM interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// ExtractionError means the provider answered but the reply had no text at
// the expected path (no candidates, blocked, empty parts…).
type ExtractionError struct {
	Provider string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: cannot extract answer: %s", e.Provider, e.Reason)
}
