package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var (
	Ctx   = context.Background()
	Redis *redis.Client
)

// InitRedis connects to REDIS_ADDR. It is skipped when REDIS_ADDR is empty.
func InitRedis() error {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		slog.Info("REDIS_ADDR not set, Redis disabled")
		return nil
	}

	db := GetEnvInt("REDIS_DB", 0)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("ping redis: %w", err)
	}

	Redis = client
	slog.Info("Redis connected", "addr", addr, "db", db)
	return nil
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
