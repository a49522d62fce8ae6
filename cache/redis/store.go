// Package redis implements cache.Store using Redis, for deployments where
// cached responses are shared across processes. Values are stored as JSON
// and expiry maps to the key's Redis TTL.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	s := rediscache.New(client)
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TristanKalmbach/MediatorNet/cache"
)

// Ensure Store implements cache.Store at compile time.
var _ cache.Store = (*Store)(nil)

// Store implements cache.Store backed by Redis.
type Store struct {
	client redis.Cmdable
}

// New creates a new Redis-backed store. The caller owns the Redis client
// lifecycle.
func New(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// Get implements cache.Store. The stored JSON is unmarshalled into dst.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: get %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("redis: decode %q: %w", key, err)
	}
	return true, nil
}

// Set implements cache.Store. The priority hint has no Redis equivalent
// and is ignored; eviction follows the server's maxmemory policy.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration, _ cache.Priority) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %q: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %q: %w", key, err)
	}
	return nil
}
