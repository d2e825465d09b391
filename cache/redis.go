package cache

import (
	"context"
	"fmt"
	"time"

	"songshelf/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient is the shared Redis client. It stays nil when Redis is
// unavailable, in which case every cache operation degrades to a miss.
var RedisClient *redis.Client

// Connect initializes the Redis connection.
func Connect(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	return nil
}

// Close shuts down the Redis connection.
func Close() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// Ping verifies the connection is alive.
func Ping(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("Redis client not initialized")
	}
	return RedisClient.Ping(ctx).Err()
}
