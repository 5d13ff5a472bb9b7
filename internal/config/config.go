package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP
	Addr           string
	RequestTimeout time.Duration
	CORSOrigins    []string

	// Rate limiting (per client IP)
	RateLimit       int
	RateLimitWindow time.Duration

	// Behavior
	SeedData bool

	Environment string
	LogLevel    string
}

// Load reads configuration from the environment, with a best-effort .env
// file for local runs. Every key has a workable default.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getenv("ADDR", ":8080"),
		RequestTimeout: getdur("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins:    getlist("CORS_ORIGINS", []string{"*"}),

		RateLimit:       getint("RATE_LIMIT", 100),
		RateLimitWindow: getdur("RATE_LIMIT_WINDOW", time.Minute),

		SeedData: getbool("SEED_DATA", true),

		Environment: getenv("ENVIRONMENT", "dev"),
		LogLevel:    getenv("LOG_LEVEL", ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
	}
	return def
}

func getlist(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
