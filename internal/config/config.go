package config

import (
	"os"
	"time"
)

const (
	// Matchmaking
	InitialBackoff   = 10 * time.Millisecond
	MaxBackoff       = 5 * time.Second
	PostMatchWorkers = 10

	// Pairing state
	MatchQueueKey = "matching_queue"
	RoomTTL       = 300 * time.Second

	// HTTP
	DefaultMatchingAddr   = ":8000"
	DefaultSignallingAddr = ":4000"
	DefaultRedisURL       = "redis://127.0.0.1:6379"
)

// Getenv returns the value of key, or def when the variable is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// RedisURL returns the Redis connection URL for both services.
func RedisURL() string {
	return Getenv("REDIS_URL", DefaultRedisURL)
}
