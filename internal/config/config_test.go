package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected default request timeout 30s, got %v", cfg.RequestTimeout)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitWindow != time.Minute {
		t.Fatalf("expected default rate limit 100/min, got %d/%v", cfg.RateLimit, cfg.RateLimitWindow)
	}
	if !cfg.SeedData {
		t.Fatalf("seed data should default to true")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.RequestTimeout)
	}
	if cfg.RateLimit != 10 {
		t.Fatalf("expected 10, got %d", cfg.RateLimit)
	}
	if cfg.SeedData {
		t.Fatalf("expected seeding disabled")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("expected trimmed origin list, got %v", cfg.CORSOrigins)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("SEED_DATA", "maybe")

	cfg := Load()

	if cfg.RateLimit != 100 {
		t.Fatalf("malformed int should fall back to 100, got %d", cfg.RateLimit)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("malformed duration should fall back to 30s, got %v", cfg.RequestTimeout)
	}
	if !cfg.SeedData {
		t.Fatalf("malformed bool should fall back to true")
	}
}
