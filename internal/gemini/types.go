// Package gemini talks to the Generative Language generateContent endpoint
// over plain REST.
package gemini

import (
	"fmt"
	"time"
)

// Part is one piece of content. Only text parts are used.
type Part struct {
	Text string `json:"text"`
}

// Content groups parts.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerateContentRequest is the body of a generateContent call.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// NewTextRequest wraps prompt as {contents:[{parts:[{text:prompt}]}]}.
func NewTextRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{Contents: []Content{{Parts: []Part{{Text: prompt}}}}}
}

// Candidate is one proposed completion.
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// PromptFeedback is set when the prompt itself was blocked.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateContentResponse is the subset of the reply we read.
type GenerateContentResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Text returns candidates[0].content.parts[0].text. The reason is non‑empty
// when that path does not exist or holds no text.
func (r *GenerateContentResponse) Text() (text string, reason string) {
	switch {
	case r == nil:
		return "", "empty response"
	case len(r.Candidates) == 0:
		if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
			return "", "prompt blocked: " + r.PromptFeedback.BlockReason
		}
		return "", "no candidates"
	case r.Candidates[0].Content == nil:
		if fr := r.Candidates[0].FinishReason; fr != "" {
			return "", "no content, finish reason " + fr
		}
		return "", "candidate has no content"
	case len(r.Candidates[0].Content.Parts) == 0:
		return "", "candidate has no parts"
	case r.Candidates[0].Content.Parts[0].Text == "":
		return "", "first part has no text"
	}
	return r.Candidates[0].Content.Parts[0].Text, ""
}

// StatusError is returned for non‑2xx replies.
type StatusError struct {
	Code    int
	Status  string
	Body    string
	Elapsed time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini: unexpected status %s", e.Status)
}
