package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "ENVIRONMENT", "LOG_LEVEL", "DEBUG", "SCRYFALL_RATE_LIMIT", "CLASSIFIER_CONFIG"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.UsePostgres())
	assert.Equal(t, "decks.db", cfg.SQLitePath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10.0, cfg.ScryfallRateLimit)
	assert.Equal(t, 30*time.Second, cfg.ScryfallTimeout)
	assert.Equal(t, "https://api.scryfall.com", cfg.ScryfallBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/decks")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SCRYFALL_RATE_LIMIT", "2.5")
	t.Setenv("SCRYFALL_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.ScryfallRateLimit)
	assert.Equal(t, 5*time.Second, cfg.ScryfallTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow, "unparsable values fall back")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production without database", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestClassifier(t *testing.T) {
	cfg := &Config{}
	cls, err := cfg.Classifier()
	require.NoError(t, err)
	assert.Equal(t, "Creature", cls.Categories()[0])

	path := filepath.Join(t.TempDir(), "classifier.toml")
	require.NoError(t, os.WriteFile(path, []byte("categories = [\"Land\", \"Creature\"]\n"), 0o644))
	cfg.ClassifierConfig = path
	cls, err = cfg.Classifier()
	require.NoError(t, err)
	assert.Equal(t, []string{"Land", "Creature"}, cls.Categories())
	assert.True(t, cls.IsCommander("commanders"), "aliases keep their defaults")

	cfg.ClassifierConfig = filepath.Join(t.TempDir(), "missing.toml")
	_, err = cfg.Classifier()
	assert.Error(t, err)
}
