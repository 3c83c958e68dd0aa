package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONTACT_RATE_LIMIT_ENABLED", "")
	t.Setenv("SMTP_USERNAME", "mailer@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.RateLimitEnabled, "rate limiter must be off unless enabled")
	assert.Equal(t, 3, cfg.RateLimitMaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, "mailer@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, 50*time.Millisecond, cfg.ReloadDebounce)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONTACT_RATE_LIMIT_ENABLED", "true")
	t.Setenv("CONTACT_RATE_LIMIT_MAX", "5")
	t.Setenv("CONTACT_RATE_LIMIT_WINDOW_SECONDS", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DATA_DIR", "content/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 5, cfg.RateLimitMaxAttempts)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "content", cfg.DataDir)
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, getEnvInt("SMTP_PORT", 587))
}
