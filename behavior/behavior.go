package behavior

import (
	"context"
	"reflect"
)

// Next is the continuation passed to a behavior: the rest of the pipeline,
// ending at the handler invocation. A behavior decides whether, when, and
// how many times to invoke it.
type Next func(ctx context.Context) (any, error)

// Behavior wraps handler execution with cross-cutting logic. It receives
// the request value and the next continuation. The request is shared,
// immutable data; behaviors must not retain it past the call.
type Behavior func(ctx context.Context, req any, next Next) (any, error)

// Typed is the compile-time-typed behavior shape used for pair-scoped
// registration, where the request and response types are known statically.
type Typed[T, R any] func(ctx context.Context, req T, next func(ctx context.Context) (R, error)) (R, error)

// Chain composes multiple behaviors into a single Behavior.
// Behaviors are applied right-to-left: the first behavior in the
// list is the outermost wrapper.
//
// Example: Chain(logging, validation, caching) executes as:
//
//	logging → validation → caching → handler
func Chain(behaviors ...Behavior) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		// Build the chain from the end backwards.
		h := next
		for i := len(behaviors) - 1; i >= 0; i-- {
			b := behaviors[i]
			inner := h
			h = func(ctx context.Context) (any, error) {
				return b(ctx, req, inner)
			}
		}
		return h(ctx)
	}
}

// requestName returns the request's type name for log and span attributes.
func requestName(req any) string {
	if req == nil {
		return "<nil>"
	}
	return reflect.TypeOf(req).String()
}
