package behavior

import (
	"context"
	"time"
)

// Timeout returns a behavior that enforces a per-dispatch deadline. The
// continuation runs under a context cancelled after d; handlers observing
// their context return context.DeadlineExceeded. A non-positive d makes the
// behavior a pass-through.
func Timeout(d time.Duration) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		if d <= 0 {
			return next(ctx)
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return next(ctx)
	}
}
