package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis backs the leaderboard sorted set. It stays nil when REDIS_ADDR is
// unset or the server is unreachable; callers fall back to SQL ordering.
var Redis *redis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️  Redis unavailable, leaderboard cache disabled: %v\n", err)
		return
	}

	Redis = client
	log.Println("✅ Connected to redis")
}
