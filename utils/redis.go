package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

// ===========================
// 🎯 Redis Cache
// ===========================

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// InitRedis connects to Redis. The cache is best-effort: if the connection
// fails the client is left nil and every cache call becomes a no-op.
func InitRedis(cfg *config.Config) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(Ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, caching disabled: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Redis connected")
}

// CacheGet returns the cached value for key, or "" when absent or disabled.
func CacheGet(key string) string {
	if RedisClient == nil {
		return ""
	}
	val, err := RedisClient.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// CacheSet stores value under key with a TTL. Errors are ignored.
func CacheSet(key, value string, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	RedisClient.Set(Ctx, key, value, ttl)
}

// CacheDel removes keys, ignoring errors.
func CacheDel(keys ...string) {
	if RedisClient == nil || len(keys) == 0 {
		return
	}
	RedisClient.Del(Ctx, keys...)
}
