package database

import (
	"context"
	"log"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis creates the Redis client backing the shopper session layer
// (correlation tokens and carts).
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
func ConnectRedis() *redis.Client {
	db, _ := strconv.Atoi(getenvDefault("REDIS_DB", "0"))

	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: getenvDefault("REDIS_PASSWORD", ""),
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return client
}
