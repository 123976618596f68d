package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const DEFAULT_ENDPOINT = "http://localhost:8000/api/sentiment/"

// Settings holds everything the client and the dev endpoint read from the
// environment. Flags on the CLI override individual fields after Load.
type Settings struct {
	AppEnv        string        `envconfig:"APP_ENV" default:"dev"`
	Endpoint      string        `envconfig:"SENTIMENT_ENDPOINT" default:"http://localhost:8000/api/sentiment/"`
	Timeout       time.Duration `envconfig:"SENTIMENT_TIMEOUT" default:"0s"`
	LogLevel      string        `envconfig:"SENTIMENT_LOG_LEVEL" default:"info"`
	LogFile       string        `envconfig:"SENTIMENT_LOG_FILE"`
	DevServerAddr string        `envconfig:"DEV_SERVER_ADDR" default:"127.0.0.1:8000"`

	// Optional. When OPENAI_API_KEY is set the dev endpoint asks OpenAI for
	// themes and the explanation instead of counting words locally.
	OpenAIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
}

func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to process environment: %w", err)
	}
	if s.Timeout < 0 {
		return Settings{}, fmt.Errorf("SENTIMENT_TIMEOUT must not be negative, got %s", s.Timeout)
	}
	return s, nil
}

// IsProduction drops source locations from logs and makes a missing env
// file expected rather than worth a warning.
func (s Settings) IsProduction() bool {
	return s.AppEnv == "production" || s.AppEnv == "prod"
}
