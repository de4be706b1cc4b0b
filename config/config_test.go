package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DEEPGRAM_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://api.deepgram.com", cfg.BaseURL)
	assert.Equal(t, 300*time.Second, cfg.Timeout())
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, 45*time.Second, (&Config{TimeoutSeconds: 45}).Timeout())
	assert.Equal(t, 300*time.Second, (&Config{}).Timeout())
	assert.Equal(t, 300*time.Second, (&Config{TimeoutSeconds: -1}).Timeout())
}
