package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis initializes and returns a Redis client instance.
func ConnectRedis(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// DisconnectRedis closes the Redis client connection.
func DisconnectRedis(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}
	return nil
}

// ListingKey is the cache key for a single public listing response.
func ListingKey(id string) string {
	return "listing:" + id
}

// GetJSON returns the cached JSON payload for key, or ("", false) on a miss.
// Cache errors are treated as misses; the store remains the source of truth.
func GetJSON(ctx context.Context, rdb *redis.Client, key string) (string, bool) {
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetJSON stores a JSON payload under key for ttl. Failures are ignored for
// the same reason GetJSON treats errors as misses.
func SetJSON(ctx context.Context, rdb *redis.Client, key, payload string, ttl time.Duration) {
	_ = rdb.Set(ctx, key, payload, ttl).Err()
}

// Invalidate removes the cached entries for the given keys.
func Invalidate(ctx context.Context, rdb *redis.Client, keys ...string) {
	if len(keys) == 0 {
		return
	}
	_ = rdb.Del(ctx, keys...).Err()
}
