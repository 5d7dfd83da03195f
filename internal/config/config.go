package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI's runtime configuration.
type Config struct {
	// DBPath is the SQLite file path or a postgres:// DSN. Empty means the
	// store's default location.
	DBPath string

	// LearnerID names the learner whose progress commands act on.
	// Default: "default".
	LearnerID string

	// DailyNewLimit overrides the learner's saved daily new-card limit when
	// non-negative. Default: -1 (use saved settings).
	DailyNewLimit int

	// SessionCap is the maximum number of cards in one session. Default: 20.
	SessionCap int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LearnerID:     "default",
		DailyNewLimit: -1,
		SessionCap:    20,
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("FLASHQUEST_DB"); p != "" {
		cfg.DBPath = p
	}
	if l := os.Getenv("FLASHQUEST_LEARNER"); l != "" {
		cfg.LearnerID = l
	}
	if v := os.Getenv("FLASHQUEST_DAILY_NEW_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FLASHQUEST_DAILY_NEW_LIMIT: %w", err)
		}
		cfg.DailyNewLimit = n
	}
	if v := os.Getenv("FLASHQUEST_SESSION_CAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FLASHQUEST_SESSION_CAP: %w", err)
		}
		cfg.SessionCap = n
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.LearnerID == "" {
		return fmt.Errorf("FLASHQUEST_LEARNER must not be empty")
	}
	if c.SessionCap <= 0 {
		return fmt.Errorf("FLASHQUEST_SESSION_CAP must be positive, got %d", c.SessionCap)
	}
	return nil
}
