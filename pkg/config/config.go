package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings, read from the environment with an
// optional .env file for local development.
type Config struct {
	Port     string
	DBDriver string
	DBDSN    string

	// RedisAddr enables the cache-aside layer when non-empty.
	RedisAddr string
	CacheTTL  time.Duration
}

// Load reads .env (if present) and the environment.
func Load() Config {
	// Missing .env is fine; deployed environments inject real env vars.
	_ = godotenv.Load()

	ttlSeconds := 300
	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttlSeconds = n
		}
	}

	return Config{
		Port:      getenv("PORT", "8080"),
		DBDriver:  getenv("DB_DRIVER", "sqlite"),
		DBDSN:     getenv("DB_DSN", "roblox.db"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		CacheTTL:  time.Duration(ttlSeconds) * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
