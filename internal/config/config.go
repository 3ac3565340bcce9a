// Package config centralises all environment / flag configuration for the API.
// It should be imported only by `cmd/…` (and test code). Business‑logic
// layers receive an already‑built Config instance via dependency‑injection.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
	ProviderDummy  = "dummy"
)

// Config holds every runtime option the server needs.
// Keep it flat: primitive types, no embedded structs.
type Config struct {
	// Network
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Server tuning (seconds). WriteTimeout must outlast the retry budget.
	ReadTimeoutSec  int `env:"READ_TIMEOUT_SEC" envDefault:"5"`
	WriteTimeoutSec int `env:"WRITE_TIMEOUT_SEC" envDefault:"90"`

	// Persona
	UserBio     string `env:"USER_BIO"`
	PersonaFile string `env:"PERSONA_FILE"`

	// Generation provider
	Provider      string `env:"LLM_PROVIDER" envDefault:"gemini"`
	APIKey        string `env:"API_KEY"`
	Model         string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// Vertex AI
	ProjectID       string `env:"GCP_PROJECT_ID"`
	Location        string `env:"GCP_LOCATION" envDefault:"us-central1"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// OpenAI‑compatible endpoints
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Yandex GPT
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// Retry policy for upstream calls
	RetryMaxAttempts     int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryInitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL" envDefault:"250ms"`
	RetryMaxInterval     time.Duration `env:"RETRY_MAX_INTERVAL" envDefault:"5s"`
	RetryMaxElapsed      time.Duration `env:"RETRY_MAX_ELAPSED" envDefault:"60s"`
	RetryAttemptTimeout  time.Duration `env:"RETRY_ATTEMPT_TIMEOUT" envDefault:"20s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDev   bool   `env:"LOG_DEV" envDefault:"false"`
}

// ReadTimeout returns READ_TIMEOUT_SEC as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns WRITE_TIMEOUT_SEC as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}

// ActiveModel is the model name reported for the selected provider.
func (c Config) ActiveModel() string {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAIModel
	case ProviderYandex, ProviderDummy:
		return ""
	default:
		return c.Model
	}
}

// Load parses the environment (and an optional .env file) into Config.
// It terminates the process on invalid configuration so mis‑configurations
// fail fast.
func Load() Config {
	// godotenv.Load() is a no‑op if .env doesn't exist, so it is safe in production.
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Parse reads the process environment into Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.UserBio == "" && c.PersonaFile == "" {
		return fmt.Errorf("one of USER_BIO or PERSONA_FILE is required")
	}

	switch c.Provider {
	case ProviderGemini, ProviderGenAI, ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("API_KEY is required for provider %q", c.Provider)
		}
	case ProviderVertex:
		if c.ProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required for provider %q", c.Provider)
		}
	case ProviderYandex:
		if c.YandexOAuthToken == "" || c.YandexFolderID == "" {
			return fmt.Errorf("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID are required for provider %q", c.Provider)
		}
	case ProviderDummy:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}

	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", c.RetryMaxAttempts)
	}
	if c.RetryInitialInterval <= 0 || c.RetryMaxInterval <= 0 {
		return fmt.Errorf("retry intervals must be positive")
	}
	if c.RetryMaxElapsed < 0 || c.RetryAttemptTimeout < 0 {
		return fmt.Errorf("RETRY_MAX_ELAPSED and RETRY_ATTEMPT_TIMEOUT must not be negative")
	}
	return nil
}
