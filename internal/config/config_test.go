package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FLASHQUEST_DB", "FLASHQUEST_LEARNER",
		"FLASHQUEST_DAILY_NEW_LIMIT", "FLASHQUEST_SESSION_CAP",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "default", cfg.LearnerID)
	assert.Equal(t, -1, cfg.DailyNewLimit)
	assert.Equal(t, 20, cfg.SessionCap)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLASHQUEST_DB", "/tmp/x.db")
	t.Setenv("FLASHQUEST_LEARNER", "ana")
	t.Setenv("FLASHQUEST_DAILY_NEW_LIMIT", "7")
	t.Setenv("FLASHQUEST_SESSION_CAP", "15")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "ana", cfg.LearnerID)
	assert.Equal(t, 7, cfg.DailyNewLimit)
	assert.Equal(t, 15, cfg.SessionCap)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	clearEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_BadNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLASHQUEST_SESSION_CAP", "lots")

	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "FLASHQUEST_SESSION_CAP")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty learner", func(c *Config) { c.LearnerID = "" }, true},
		{"zero cap", func(c *Config) { c.SessionCap = 0 }, true},
		{"negative cap", func(c *Config) { c.SessionCap = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("FLASHQUEST_LEARNER")
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FLASHQUEST_LEARNER=from-file\n"), 0o644))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("FLASHQUEST_LEARNER"))

	// Missing files are not an error.
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
