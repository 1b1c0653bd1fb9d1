package cache

import (
	"context"
	"time"

	"trending-board/domain/repository"
	"trending-board/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every dashboard entry so InvalidateAll only touches
// our own keys.
const keyPrefix = "trending:"

// NewCache connects a Redis client and verifies it with a ping.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisCache is the Redis-backed dashboard cache. Failures degrade to cache
// misses; the pipeline then refetches from the API.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Redis GET failed; treating as miss")
		}
		return nil, false
	}
	return payload, true
}

func (c *RedisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis SET failed; entry not cached")
	}
}

// InvalidateAll deletes every key under the dashboard prefix.
func (c *RedisCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

var _ repository.IDashboardCache = (*RedisCache)(nil)
