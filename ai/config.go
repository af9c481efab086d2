package ai

import (
	"time"

	"chat-mock/errors"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"10s"`
}

// LoadConfig reads the ice breaker configuration from the environment.
// A missing API key disables only this feature, never the application.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		return Config{}, errors.ErrMissingAPIKey
	}
	return cfg, nil
}
