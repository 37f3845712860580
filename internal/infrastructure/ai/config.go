package ai

import (
	"os"
	"strings"
	"time"
)

// Config carries the text-generation provider settings. It is built once at
// process start and injected; nothing mutates it afterwards.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

const (
	defaultBaseURL = "https://api.mistral.ai"
	defaultModel   = "mistral-large-latest"
	defaultTimeout = 30 * time.Second
)

// NewConfigFromEnv reads the provider settings from the environment.
//
// Supported env vars:
//   - MISTRAL_API_KEY
//   - MISTRAL_BASE_URL (default: https://api.mistral.ai)
//   - MISTRAL_MODEL (default: mistral-large-latest)
func NewConfigFromEnv() Config {
	return Config{
		APIKey:  strings.TrimSpace(os.Getenv("MISTRAL_API_KEY")),
		BaseURL: getenvDefault("MISTRAL_BASE_URL", defaultBaseURL),
		Model:   getenvDefault("MISTRAL_MODEL", defaultModel),
		Timeout: defaultTimeout,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
