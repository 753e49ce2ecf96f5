package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps cooldowns in Redis, one expiring key per (address, chain)
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed cooldown store
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func cooldownKey(address string, chainID int64) string {
	return fmt.Sprintf("cooldown:claim:%d:%s", chainID, normalizeAddress(address))
}

// Remaining reads the key TTL; a missing key means no cooldown
func (r *RedisStore) Remaining(ctx context.Context, address string, chainID int64) (time.Duration, error) {
	ttl, err := r.client.PTTL(ctx, cooldownKey(address, chainID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	// -2 missing, -1 no expiry; neither is a live cooldown
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// Acquire sets the cooldown key with SET NX and a TTL of d
func (r *RedisStore) Acquire(ctx context.Context, address string, chainID int64, d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, nil
	}

	set, err := r.client.SetNX(ctx, cooldownKey(address, chainID), time.Now().Add(d).Unix(), d).Result()
	if err != nil {
		return 0, err
	}
	if set {
		return 0, nil
	}

	left, err := r.Remaining(ctx, address, chainID)
	if err != nil {
		return 0, err
	}
	// The key expired between SET NX and PTTL; this claim still lost.
	if left <= 0 {
		left = time.Millisecond
	}
	return left, nil
}

// Ping checks if Redis is responsive
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Name() string { return "redis" }

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
