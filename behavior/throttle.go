package behavior

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle returns a behavior that blocks on limiter before every dispatch,
// spreading request admission over time. Waiting ends early when ctx is
// cancelled, and the continuation is never called in that case.
func Throttle(limiter *rate.Limiter) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return next(ctx)
	}
}
