package mediator

import (
	"context"
	"fmt"
	"iter"
	"reflect"
)

// Stream dispatches a stream request to its single registered stream
// handler and returns the handler's lazy element sequence. Elements are
// produced incrementally as the caller consumes them; the sequence may be
// finite or infinite.
//
//	seq, err := mediator.Stream[Tick](ctx, m, WatchTicks{Symbol: "ABC"})
//	for tick, err := range seq { ... }
//
// Behaviors are not composed into the streaming path; a stream handler
// needing cross-cutting concerns builds them in itself. Cancellation of ctx
// stops production at the next element boundary: the engine checks the
// context before every yield, even when the handler does not.
//
// Stream fails with ErrHandlerNotFound when no stream handler is registered
// for the (request, element) pair.
func Stream[R any](ctx context.Context, m *Mediator, req any) (iter.Seq2[R, error], error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	k := pair{request: reflect.TypeOf(req), response: reflect.TypeFor[R]()}
	invoke, err := m.resolver.ResolveStream(k.request, k.response)
	if err != nil {
		return nil, err
	}

	src := invoke(ctx, req)
	return func(yield func(R, error) bool) {
		for v, err := range src {
			if ctx.Err() != nil {
				// Cancelled mid-stream: stop production without
				// disturbing elements already yielded.
				return
			}
			if err != nil {
				var zero R
				if !yield(zero, err) {
					return
				}
				continue
			}
			el, ok := v.(R)
			if !ok {
				var zero R
				if !yield(zero, fmt.Errorf("%w: got %T, want %s",
					ErrInvalidResponseType, v, k.response)) {
					return
				}
				continue
			}
			if !yield(el, nil) {
				return
			}
		}
	}, nil
}
