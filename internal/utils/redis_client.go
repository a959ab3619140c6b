package utils

import (
	"context"
	"sync"
	"time"

	"github.com/PhanHoangKe/GooglePhotosClone/internal/config"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedis returns the singleton Redis client, or nil when Redis is disabled
// in config. Callers must handle nil and fall back to in-process state.
func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.Get().Redis
		if !cfg.Enabled {
			return
		}
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// Ping errors are ignored so startup without Redis still works.
		_ = redisClient.Ping(ctx).Err()
	})
	return redisClient
}

// RedisKey builds a namespaced key under the configured prefix.
func RedisKey(parts ...string) string {
	key := config.Get().Redis.Prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
