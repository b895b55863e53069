package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_NAME", "PUBLIC_BASE_URL", "CORS_ORIGINS",
		"ASSISTANT_REPLY_DELAY", "SESSION_TTL", "SESSION_SWEEP_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "ecoscan", cfg.DatabaseName)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, time.Second, cfg.AssistantReplyDelay)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "@every 10m", cfg.SessionSweepSchedule)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("PUBLIC_BASE_URL", "https://eco.example.com/")
	t.Setenv("ASSISTANT_REPLY_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://eco.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.AssistantReplyDelay)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
