package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosidekick/goconfig"
)

// ErrMissingAPIKey is returned when no Deepgram credential is configured.
// There is deliberately no built-in fallback key: a missing credential is a
// configuration error.
var ErrMissingAPIKey = errors.New("no Deepgram API key configured (set DEEPGRAM_API_KEY or pass --api-key)")

// Config holds environment-derived settings. CLI flags override APIKey.
type Config struct {
	APIKey         string `cfg:"deepgram_api_key"`
	BaseURL        string `cfg:"deepgram_base_url" cfgDefault:"https://api.deepgram.com"`
	TimeoutSeconds int    `cfg:"deepgram_timeout_seconds" cfgDefault:"300"`
}

// Load reads configuration from environment variables. Command-line flags are
// owned by the caller, so goconfig's own flag handling is disabled.
func Load() (*Config, error) {
	goconfig.DisableFlags = true

	var cfg Config
	if err := goconfig.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// Timeout returns the transcription request timeout as a duration
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 300 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
