// Package cache defines the store contract consumed by the caching
// behavior. The engine is not a cache implementation; backends live in
// subpackages (memory for development and testing, redis for shared
// deployments) or in the application.
package cache

import (
	"context"
	"time"
)

// Priority is a hint describing how reluctant a store should be to evict
// an entry under pressure. Stores without eviction (or without a way to
// express the hint, like Redis) may ignore it.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Store is a key/value store with per-entry expiry.
//
// Get looks up key and, when found and unexpired, assigns the stored value
// into dst (a non-nil pointer) and reports true. A missing or expired key
// reports (false, nil); absence is not an error.
//
// Set stores value under key with the given time-to-live and eviction
// priority. A non-positive ttl means the entry does not expire.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration, priority Priority) error
}
