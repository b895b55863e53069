package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                 string
	Env                  string
	DatabaseName         string
	PublicBaseURL        string
	CORSOrigins          string
	AssistantReplyDelay  time.Duration
	SessionTTL           time.Duration
	SessionSweepSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:                 os.Getenv("PORT"),
		Env:                  os.Getenv("ENV"),
		DatabaseName:         os.Getenv("DATABASE_NAME"),
		PublicBaseURL:        os.Getenv("PUBLIC_BASE_URL"),
		CORSOrigins:          os.Getenv("CORS_ORIGINS"),
		AssistantReplyDelay:  durationEnv("ASSISTANT_REPLY_DELAY", time.Second),
		SessionTTL:           durationEnv("SESSION_TTL", 24*time.Hour),
		SessionSweepSchedule: os.Getenv("SESSION_SWEEP_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "ecoscan"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}
	if cfg.SessionSweepSchedule == "" {
		cfg.SessionSweepSchedule = "@every 10m"
	}

	return cfg
}

// IsDevelopment reports whether console logging and verbose SQL should be used
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return fallback
	}
	return d
}
