package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Database URLs
	PostgresURL   string
	RedisURL      string
	ClickHouseURL string // optional, enables the prediction log

	// Providers
	CricAPIBaseURL     string
	CricAPIKey         string
	OpenWeatherBaseURL string
	OpenWeatherAPIKey  string
	SentimentURL       string
	SentimentToken     string

	// Outbound rate limiting, applied per provider
	ProviderRateLimitPerSecond float64
	ProviderRateLimitBurst     int

	// Prediction engine
	EnrichmentTimeout time.Duration
	LiveStatsCacheTTL time.Duration
	TeamStatsCacheTTL time.Duration
	AffinityFile      string

	// Prediction log worker pool
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		ClickHouseURL: getEnv("CLICKHOUSE_URL", ""),

		CricAPIBaseURL:     getEnv("CRICAPI_BASE_URL", "https://api.cricapi.com/v1"),
		CricAPIKey:         getEnv("CRICAPI_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		SentimentURL:       getEnv("SENTIMENT_URL", ""),
		SentimentToken:     getEnv("SENTIMENT_TOKEN", ""),

		ProviderRateLimitPerSecond: getEnvFloat("PROVIDER_RATE_LIMIT_PER_SECOND", 5),
		ProviderRateLimitBurst:     getEnvInt("PROVIDER_RATE_LIMIT_BURST", 5),

		EnrichmentTimeout: getEnvDuration("ENRICHMENT_TIMEOUT", 3*time.Second),
		LiveStatsCacheTTL: getEnvDuration("LIVE_STATS_CACHE_TTL", 60*time.Second),
		TeamStatsCacheTTL: getEnvDuration("TEAM_STATS_CACHE_TTL", 10*time.Minute),
		AffinityFile:      getEnv("AFFINITY_FILE", ""),

		WorkerCount:   getEnvInt("WORKER_COUNT", 2),
		QueueSize:     getEnvInt("QUEUE_SIZE", 10000),
		BatchSize:     getEnvInt("BATCH_SIZE", 500),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 1*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production logging
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
