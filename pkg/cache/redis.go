package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces keys written by [RedisCache].
const DefaultRedisPrefix = "pokequiz:http:"

// RedisCache stores entries as Redis strings with no expiry.
type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache connects to the Redis server described by a redis:// URL
// and verifies the connection with PING.
func NewRedisCache(ctx context.Context, url, prefix string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisCache(rdb, prefix), nil
}

func newRedisCache(rdb *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{rdb: rdb, prefix: prefix}
}

// Name returns "redis".
func (c *RedisCache) Name() string { return "redis" }

// Get retrieves a value from the cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	return c.rdb.Set(ctx, c.key(key), data, 0).Err()
}

// Delete removes a value from the cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, c.key(key)).Err()
}

// Close closes the client connection pool.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// Stats scans the prefix and sums value lengths.
func (c *RedisCache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 256).Iterator()
	for iter.Next(ctx) {
		n, err := c.rdb.StrLen(ctx, iter.Val()).Result()
		if err != nil {
			return s, err
		}
		s.Entries++
		s.Bytes += n
	}
	return s, iter.Err()
}

// Clear deletes every key under the prefix.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	count := 0
	iter := c.rdb.Scan(ctx, 0, c.prefix+"*", 256).Iterator()
	for iter.Next(ctx) {
		n, err := c.rdb.Del(ctx, iter.Val()).Result()
		if err != nil {
			return count, err
		}
		count += int(n)
	}
	return count, iter.Err()
}

func (c *RedisCache) key(key string) string {
	return c.prefix + HashKey(key)
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Statser = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
