package internal

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	tokenCacheKey = "ordergate:gateway:token"
	tokenCacheTTL = 5 * time.Minute
)

// ITokenCache is the optional short-lived bearer-token cache. A nil cache is
// valid and means every gateway operation authenticates from scratch.
type ITokenCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}

type RedisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(addr string) *RedisTokenCache {
	return &RedisTokenCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RedisTokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.client.Get(ctx, tokenCacheKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, token string) error {
	return c.client.Set(ctx, tokenCacheKey, token, tokenCacheTTL).Err()
}
