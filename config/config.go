package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL       string
	Port        string
	LogLevel    log.Level
	LastFeedTTL time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
// Variables already set in the shell take precedence over .env values.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	level := log.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		parsed, err := log.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
		}
		level = parsed
	}

	ttl := 10 * time.Minute
	if s := os.Getenv("LAST_FEED_TTL"); s != "" {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid LAST_FEED_TTL %q: %w", s, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("LAST_FEED_TTL must be positive, got %s", parsed)
		}
		ttl = parsed
	}

	// PG_URL is optional: without it feed logs are not recorded.
	return &Config{
		PGURL:       os.Getenv("PG_URL"),
		Port:        port,
		LogLevel:    level,
		LastFeedTTL: ttl,
	}, nil
}

// FeedLogEnabled reports whether a database is configured for feed logs.
func (c *Config) FeedLogEnabled() bool {
	return c.PGURL != ""
}
