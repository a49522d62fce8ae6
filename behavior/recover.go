package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Recover returns a behavior that recovers from panics in the pipeline.
// Panics are converted to errors and logged with a stack trace.
func Recover(logger *slog.Logger) Behavior {
	return func(ctx context.Context, req any, next Next) (out any, retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("request handler panicked",
					slog.String("request", requestName(req)),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				out = nil
				retErr = fmt.Errorf("mediator: panic handling %s: %v", requestName(req), r)
			}
		}()
		return next(ctx)
	}
}
