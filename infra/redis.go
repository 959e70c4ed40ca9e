package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetupRedis returns nil when REDIS_ADDR is unset or unreachable; callers fall back to SQLite.
func SetupRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, using SQLite token blacklist: %v", err)
		_ = client.Close()
		return nil
	}

	log.Printf("Redis connected: %s", cfg.RedisAddr)
	return client
}
