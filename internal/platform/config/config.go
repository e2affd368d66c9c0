package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultCORSOrigins    = "http://localhost:3000"
	defaultRateLimit      = "300-M"
	defaultPageSize       = 10
	defaultMaxPageSize    = 100
	defaultIngestMin      = 5
	defaultIngestMax      = 15
	defaultMaxUploadBytes = 10 << 20
	defaultDigestSchedule = "@every 1h"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	// RateLimit uses the limiter formatted syntax, e.g. "300-M" for 300 requests per minute.
	RateLimit string
	SeedData  bool

	DefaultPageSize int
	MaxPageSize     int

	// Bounds for the number of lines the synthetic ingestor produces per upload.
	IngestMinTransactions int
	IngestMaxTransactions int
	MaxUploadBytes        int64

	// DigestSchedule is the cron schedule of the pending approvals digest; "off" disables it.
	DigestSchedule string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("SEED_DATA", true)
	viper.SetDefault("DEFAULT_PAGE_SIZE", defaultPageSize)
	viper.SetDefault("MAX_PAGE_SIZE", defaultMaxPageSize)
	viper.SetDefault("INGEST_MIN_TRANSACTIONS", defaultIngestMin)
	viper.SetDefault("INGEST_MAX_TRANSACTIONS", defaultIngestMax)
	viper.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	viper.SetDefault("DIGEST_SCHEDULE", defaultDigestSchedule)

	// Actual environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SeedData = viper.GetBool("SEED_DATA")

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
		log.Printf("Warning: CORS_ALLOWED_ORIGINS not set. Defaulting to %s.\n", defaultCORSOrigins)
	}

	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.DefaultPageSize = positiveInt("DEFAULT_PAGE_SIZE", defaultPageSize)
	cfg.MaxPageSize = positiveInt("MAX_PAGE_SIZE", defaultMaxPageSize)
	if cfg.DefaultPageSize > cfg.MaxPageSize {
		log.Printf("Warning: DEFAULT_PAGE_SIZE (%d) exceeds MAX_PAGE_SIZE (%d). Clamping.\n", cfg.DefaultPageSize, cfg.MaxPageSize)
		cfg.DefaultPageSize = cfg.MaxPageSize
	}

	cfg.IngestMinTransactions = positiveInt("INGEST_MIN_TRANSACTIONS", defaultIngestMin)
	cfg.IngestMaxTransactions = positiveInt("INGEST_MAX_TRANSACTIONS", defaultIngestMax)
	if cfg.IngestMinTransactions > cfg.IngestMaxTransactions {
		log.Printf("Warning: INGEST_MIN_TRANSACTIONS (%d) exceeds INGEST_MAX_TRANSACTIONS (%d). Using defaults.\n",
			cfg.IngestMinTransactions, cfg.IngestMaxTransactions)
		cfg.IngestMinTransactions = defaultIngestMin
		cfg.IngestMaxTransactions = defaultIngestMax
	}

	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
		log.Printf("Warning: Invalid value for MAX_UPLOAD_BYTES. Defaulting to %d.\n", cfg.MaxUploadBytes)
	}

	cfg.DigestSchedule = strings.TrimSpace(viper.GetString("DIGEST_SCHEDULE"))
	if cfg.DigestSchedule == "" {
		cfg.DigestSchedule = defaultDigestSchedule
	}

	return cfg, nil
}

// DigestEnabled reports whether the pending approvals digest should be scheduled.
func (c *Config) DigestEnabled() bool {
	return !strings.EqualFold(c.DigestSchedule, "off")
}

func positiveInt(key string, def int) int {
	v := viper.GetInt(key)
	if v <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
