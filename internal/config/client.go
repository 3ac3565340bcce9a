package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ClientConfig holds the options of the askme terminal client. Flags set by
// cmd/askme take precedence over these values.
type ClientConfig struct {
	ServerURL string        `env:"ASKME_SERVER_URL" envDefault:"http://localhost:8080"`
	Timeout   time.Duration `env:"ASKME_TIMEOUT" envDefault:"2m"`
	LogFile   string        `env:"ASKME_LOG_FILE"`
}

// LoadClient parses the client environment (and an optional .env file).
func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}
