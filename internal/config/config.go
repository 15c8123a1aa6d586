package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	Language          string
	PuzzlesPerType    int
	LeaderboardLimit  int
	PackWorkerCount   int
	PackQueueSize     int
	PackCheckInterval time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:otakudojo.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		Language:          envOr("PACK_LANGUAGE", "en"),
		PuzzlesPerType:    envIntOr("PUZZLES_PER_TYPE", 2),
		LeaderboardLimit:  envIntOr("LEADERBOARD_LIMIT", 10),
		PackWorkerCount:   envIntOr("PACK_WORKER_COUNT", 1),
		PackQueueSize:     envIntOr("PACK_QUEUE_SIZE", 8),
		PackCheckInterval: envDurationOr("PACK_CHECK_INTERVAL", time.Hour),
	}
}

// Validate rejects configurations the server cannot safely run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.PuzzlesPerType < 1 {
		return fmt.Errorf("PUZZLES_PER_TYPE must be at least 1, got %d", c.PuzzlesPerType)
	}
	if c.LeaderboardLimit < 1 {
		return fmt.Errorf("LEADERBOARD_LIMIT must be at least 1, got %d", c.LeaderboardLimit)
	}
	if c.PackWorkerCount < 1 {
		return fmt.Errorf("PACK_WORKER_COUNT must be at least 1, got %d", c.PackWorkerCount)
	}
	if c.PackQueueSize < 1 {
		return fmt.Errorf("PACK_QUEUE_SIZE must be at least 1, got %d", c.PackQueueSize)
	}
	if c.PackCheckInterval < time.Minute {
		return fmt.Errorf("PACK_CHECK_INTERVAL must be at least 1m, got %s", c.PackCheckInterval)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
