// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/deckimport.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Malotkya/CapstoneProject/internal/card"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Storage. DatabaseURL selects Postgres, otherwise decks go to SQLitePath.
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration
	SQLitePath     string

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	LogLevel    slog.Level

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Scryfall
	ScryfallBaseURL   string
	ScryfallUserAgent string
	ScryfallRateLimit float64 // requests per second
	ScryfallTimeout   time.Duration

	// Classifier TOML file; empty uses the built-in categories.
	ClassifierConfig string

	// ETag responses
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,
		SQLitePath:     envOr("SQLITE_PATH", "decks.db"),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ScryfallBaseURL:   envOr("SCRYFALL_BASE_URL", "https://api.scryfall.com"),
		ScryfallUserAgent: envOr("SCRYFALL_USER_AGENT", "CapstoneDeckImport/1.0"),
		ScryfallRateLimit: envFloat("SCRYFALL_RATE_LIMIT", 10),
		ScryfallTimeout:   envDuration("SCRYFALL_TIMEOUT", 30*time.Second),

		ClassifierConfig: envOr("CLASSIFIER_CONFIG", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	level, err := parseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	if cfg.Debug {
		cfg.LogLevel = slog.LevelDebug
	}

	if cfg.IsProduction() && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set in production")
	}
	if cfg.ScryfallRateLimit < 0 {
		return nil, fmt.Errorf("SCRYFALL_RATE_LIMIT must not be negative, got %v", cfg.ScryfallRateLimit)
	}

	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsePostgres reports whether decks are stored in Postgres.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// Classifier builds the card classifier, reading ClassifierConfig if set.
func (c *Config) Classifier() (*card.Classifier, error) {
	if c.ClassifierConfig == "" {
		return card.DefaultClassifier(), nil
	}
	cc, err := card.LoadClassifierConfig(c.ClassifierConfig)
	if err != nil {
		return nil, err
	}
	return card.NewClassifier(cc), nil
}

// NewLogger returns the text logger the binaries install as default.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
