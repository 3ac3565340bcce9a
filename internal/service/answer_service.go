package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ahmednasr/askme/internal/persona"
	"github.com/ahmednasr/askme/internal/retry"
)

// ErrEmptyQuestion is returned for blank questions.
var ErrEmptyQuestion = errors.New("question is empty")

// AnswerService answers a question in the configured persona's voice.
type AnswerService interface {
	// Ask returns the model's answer for question. Transient upstream
	// failures are retried within the configured policy.
	Ask(ctx context.Context, question string) (string, error)
}

// answerService is stateless: every call builds its own prompt and retry loop.
type answerService struct {
	llm     LLM
	persona persona.Persona
	policy  retry.Policy
	log     *zap.Logger
}

// NewAnswerService wires dependencies and returns AnswerService.
func NewAnswerService(llm LLM, p persona.Persona, policy retry.Policy, log *zap.Logger) AnswerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &answerService{llm: llm, persona: p, policy: policy, log: log}
}

// Ask builds the persona prompt and asks the model until one attempt yields
// an answer or the policy gives up.
func (s *answerService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	prompt := s.persona.Prompt(question)
	start := time.Now()

	answer, err := retry.Do(ctx, s.policy, func(ctx context.Context) (string, error) {
		return s.llm.GenerateResponse(ctx, prompt)
	}, func(attempt int, err error, wait time.Duration) {
		s.log.Warn("generation attempt failed",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err))
	})
	if err != nil {
		s.log.Error("generation failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", err
	}

	s.log.Debug("generation succeeded",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("answer_len", len(answer)))
	return answer, nil
}
