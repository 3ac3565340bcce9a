package service

import (
	"context"
	"fmt"
	"strings"
)

type dummyLLM struct{}

// GenerateResponse echoes the question (the prompt's last line) so the whole
// pipeline can run without credentials.
func (d dummyLLM) GenerateResponse(_ context.Context, prompt string) (string, error) {
	question := prompt
	if i := strings.LastIndex(prompt, "\n"); i >= 0 {
		question = prompt[i+1:]
	}
	return fmt.Sprintf("You asked **%s** 🤔 I'd love to tell you, but I'm running in *dummy mode* right now 😅", strings.TrimSpace(question)), nil
}

func NewDummyLLM() LLM {
	return dummyLLM{}
}
