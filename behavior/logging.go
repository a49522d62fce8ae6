package behavior

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSlowThreshold is the elapsed time at or above which a request is
// logged at warn level instead of info.
const DefaultSlowThreshold = 500 * time.Millisecond

// LoggingOption configures the logging behavior.
type LoggingOption func(*loggingOptions)

type loggingOptions struct {
	slow time.Duration
}

// WithSlowThreshold overrides DefaultSlowThreshold.
func WithSlowThreshold(d time.Duration) LoggingOption {
	return func(o *loggingOptions) { o.slow = d }
}

// Logging returns a pass-through behavior that measures wall-clock time
// around the continuation. Requests completing below the slow threshold log
// at info, at or above it at warn. A failing continuation logs at error
// with the elapsed time, and the failure is re-returned unchanged, never
// swallowed.
func Logging(logger *slog.Logger, opts ...LoggingOption) Behavior {
	o := loggingOptions{slow: DefaultSlowThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, req any, next Next) (any, error) {
		start := time.Now()
		out, err := next(ctx)
		elapsed := time.Since(start)

		switch {
		case err != nil:
			logger.Error("request failed",
				slog.String("request", requestName(req)),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		case elapsed >= o.slow:
			logger.Warn("slow request",
				slog.String("request", requestName(req)),
				slog.Duration("elapsed", elapsed),
				slog.Duration("threshold", o.slow),
			)
		default:
			logger.Info("request handled",
				slog.String("request", requestName(req)),
				slog.Duration("elapsed", elapsed),
			)
		}

		return out, err
	}
}
