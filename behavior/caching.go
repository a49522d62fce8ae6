package behavior

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/TristanKalmbach/MediatorNet/cache"
)

// keyNamespace prefixes every derived cache key so stored entries never
// collide with other users of the same store.
const keyNamespace = "mediator"

// Cacheable marks a request whose response may be served from a cache
// store. The declared key is scoped by the request's type name when the
// store key is derived, so two request types with the same declared key
// never collide.
type Cacheable interface {
	CacheKey() string
	CacheTTL() time.Duration
}

// Prioritized optionally refines a Cacheable request with an eviction
// priority hint. Requests without it are stored at PriorityNormal.
type Prioritized interface {
	CachePriority() cache.Priority
}

// Caching returns a typed, pair-scoped behavior that serves (T, R)
// dispatches from store. Register it with mediator.UseFor.
//
// On a hit the cached response is returned and the continuation never runs;
// a warm cache therefore needs no registered handler. On a miss the
// continuation runs, and only a successful result is stored (under the
// request's TTL and priority) before being returned. Continuation failures
// propagate unchanged and are never cached.
//
// Concurrent misses for the same derived key are collapsed into a single
// continuation call. Store failures are logged and degrade to a miss (on
// Get) or a skipped write (on Set); a broken cache slows dispatch down but
// never breaks it.
func Caching[T Cacheable, R any](store cache.Store, logger *slog.Logger) Typed[T, R] {
	var group singleflight.Group
	prefix := keyNamespace + ":" + reflect.TypeFor[T]().String() + ":"

	return func(ctx context.Context, req T, next func(ctx context.Context) (R, error)) (R, error) {
		var zero R
		key := prefix + req.CacheKey()

		var cached R
		found, err := store.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("cache get failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		if found && err == nil {
			return cached, nil
		}

		out, err, _ := group.Do(key, func() (any, error) {
			res, err := next(ctx)
			if err != nil {
				return nil, err
			}

			priority := cache.PriorityNormal
			if p, ok := any(req).(Prioritized); ok {
				priority = p.CachePriority()
			}
			if serr := store.Set(ctx, key, res, req.CacheTTL(), priority); serr != nil {
				logger.Warn("cache set failed",
					slog.String("key", key),
					slog.String("error", serr.Error()),
				)
			}
			return res, nil
		})
		if err != nil {
			return zero, err
		}
		return out.(R), nil
	}
}
