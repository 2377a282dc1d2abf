// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"infinity8/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (space details, bookings views).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for resolved-principal caching.
	AuthCacheClient *redis.Client
	// SessionCacheClient holds booking workflow session snapshots.
	SessionCacheClient *redis.Client
	// AssistantCacheClient holds assistant conversation context.
	AssistantCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every logical Redis client the service uses.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	AssistantCacheClient = newRedisClient(config.AppConfig.RedisAssistantDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for resolved-principal caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetSessionCacheClient returns the Redis client for workflow session snapshots.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetAssistantCacheClient returns the Redis client for assistant context.
func GetAssistantCacheClient() *redis.Client {
	if AssistantCacheClient == nil {
		AssistantCacheClient = newRedisClient(config.AppConfig.RedisAssistantDB)
	}
	return AssistantCacheClient
}
