package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 5, cfg.IngestMinTransactions)
	assert.Equal(t, 15, cfg.IngestMaxTransactions)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "@every 1h", cfg.DigestSchedule)
	assert.True(t, cfg.DigestEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("DIGEST_SCHEDULE", "OFF")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.False(t, cfg.DigestEnabled())
}

func TestLoadConfigFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("MAX_PAGE_SIZE", "-1")
	t.Setenv("DEFAULT_PAGE_SIZE", "500")
	t.Setenv("INGEST_MIN_TRANSACTIONS", "20")
	t.Setenv("INGEST_MAX_TRANSACTIONS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 100, cfg.DefaultPageSize, "clamped to the max page size")
	assert.Equal(t, 5, cfg.IngestMinTransactions)
	assert.Equal(t, 15, cfg.IngestMaxTransactions)
}
