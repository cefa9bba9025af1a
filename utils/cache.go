// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"deptdesk/config"
)

// LayoutCacheClient memoizes computed week layouts keyed by a content hash
// of their inputs.
var LayoutCacheClient *redis.Client

// InitLayoutCache initializes the Redis client for layout memoization.
func InitLayoutCache() {
	LayoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLayoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LayoutCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Layout Cache): %v", err)
	}
}

// GetLayoutCacheClient returns the layout memoization client.
func GetLayoutCacheClient() *redis.Client {
	if LayoutCacheClient == nil {
		InitLayoutCache()
	}
	return LayoutCacheClient
}
