package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/forkwell/mealvault/backend/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the Redis client used for session revocation.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Connected to Redis at %s", cfg.RedisAddr)
	return client, nil
}
