package config

import (
	"os"
	"time"
)

type Config struct {
	Addr        string
	DatabaseURL string
	TokenSecret string
	TokenTTL    time.Duration
}

// Load reads configuration from the environment once at startup. The
// returned value is never mutated afterwards.
func Load() Config {
	addr := envString("BOARDLINK_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Addr:        addr,
		DatabaseURL: envString("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=boardlink port=5432 sslmode=disable"),
		TokenSecret: envString("TOKEN_SECRET", "dev-secret-change-me"),
		TokenTTL:    envDuration("TOKEN_TTL", 30*time.Minute),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
