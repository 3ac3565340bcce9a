package service

import (
	"context"
	"fmt"

	"github.com/ahmednasr/askme/internal/config"
	"github.com/ahmednasr/askme/internal/gemini"
)

// NewLLM builds the provider selected by cfg.Provider. Callers should close
// the result when it implements io.Closer.
func NewLLM(ctx context.Context, cfg config.Config) (LLM, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client := gemini.NewClient(cfg.APIKey, cfg.Model, gemini.WithBaseURL(cfg.GeminiBaseURL))
		return NewGeminiLLM(client), nil
	case config.ProviderGenAI:
		return NewGenAILLM(ctx, cfg.APIKey, cfg.Model)
	case config.ProviderVertex:
		return NewVertexLLM(ctx, cfg.ProjectID, cfg.Location, cfg.Model, cfg.CredentialsFile)
	case config.ProviderOpenAI:
		return NewOpenAILLM(cfg.APIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case config.ProviderYandex:
		return NewYandexLLM(cfg.YandexOAuthToken, cfg.YandexFolderID)
	case config.ProviderDummy:
		return NewDummyLLM(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
