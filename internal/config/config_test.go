package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/cricket")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 || cfg.Env != "development" {
		t.Errorf("Unexpected server defaults %d/%s", cfg.Port, cfg.Env)
	}
	if cfg.ClickHouseURL != "" {
		t.Errorf("Expected prediction log disabled by default, got %q", cfg.ClickHouseURL)
	}
	if cfg.EnrichmentTimeout != 3*time.Second {
		t.Errorf("Expected 3s enrichment timeout, got %v", cfg.EnrichmentTimeout)
	}
	if cfg.LiveStatsCacheTTL != time.Minute || cfg.TeamStatsCacheTTL != 10*time.Minute {
		t.Errorf("Unexpected cache TTLs %v/%v", cfg.LiveStatsCacheTTL, cfg.TeamStatsCacheTTL)
	}
	if cfg.ProviderRateLimitPerSecond != 5 || cfg.ProviderRateLimitBurst != 5 {
		t.Errorf("Unexpected rate limit %v/%d", cfg.ProviderRateLimitPerSecond, cfg.ProviderRateLimitBurst)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("Unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Error("Expected development mode")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://db/cricket")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("CLICKHOUSE_URL", "clickhouse://ch:9000/cricket")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example ")
	t.Setenv("ENRICHMENT_TIMEOUT", "750ms")
	t.Setenv("PROVIDER_RATE_LIMIT_PER_SECOND", "0.5")
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("AFFINITY_FILE", "/etc/cricket/affinity.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 || !cfg.IsProduction() {
		t.Errorf("Unexpected server config %d/%s", cfg.Port, cfg.Env)
	}
	if cfg.ClickHouseURL != "clickhouse://ch:9000/cricket" {
		t.Errorf("Unexpected ClickHouse URL %q", cfg.ClickHouseURL)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("Unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.EnrichmentTimeout != 750*time.Millisecond {
		t.Errorf("Expected 750ms, got %v", cfg.EnrichmentTimeout)
	}
	if cfg.ProviderRateLimitPerSecond != 0.5 {
		t.Errorf("Expected 0.5 rps, got %v", cfg.ProviderRateLimitPerSecond)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("Expected invalid WORKER_COUNT to fall back to 2, got %d", cfg.WorkerCount)
	}
	if cfg.AffinityFile != "/etc/cricket/affinity.yaml" {
		t.Errorf("Unexpected affinity file %q", cfg.AffinityFile)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name     string
		postgres string
		redis    string
		wantVar  string
	}{
		{"missing postgres", "", "redis://localhost", "POSTGRES_URL"},
		{"missing redis", "postgres://localhost", "", "REDIS_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POSTGRES_URL", tt.postgres)
			t.Setenv("REDIS_URL", tt.redis)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantVar) {
				t.Errorf("Expected error naming %s, got %v", tt.wantVar, err)
			}
		})
	}
}
