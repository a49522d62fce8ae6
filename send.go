package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Send dispatches a query to its single registered handler and returns the
// typed response. The response type parameter is part of the routing key:
//
//	user, err := mediator.Send[User](ctx, m, GetUser{ID: 42})
//
// Behaviors registered for the (request, response) pair wrap the handler
// invocation in registration order: the first registered behavior is the
// outermost call. The handler itself is resolved lazily, inside the
// terminal continuation, so a behavior that never calls its continuation
// (a cache hit, say) succeeds even when no handler is registered.
//
// Send fails with ErrHandlerNotFound when the terminal continuation runs
// and no handler exists, regardless of registered behaviors.
func Send[R any](ctx context.Context, m *Mediator, req any) (R, error) {
	var zero R
	if req == nil {
		return zero, ErrNilRequest
	}

	k := pair{request: reflect.TypeOf(req), response: reflect.TypeFor[R]()}

	// Resolution is deliberately deferred into the terminal continuation:
	// the fast path of a short-circuiting behavior must not require a
	// registered handler.
	terminal := func(ctx context.Context) (any, error) {
		invoke, err := m.resolver.ResolveOne(k.request, k.response)
		if err != nil {
			return nil, err
		}
		return invoke(ctx, req)
	}

	out, err := m.chainFor(k)(ctx, req, terminal)
	if err != nil {
		return zero, err
	}
	res, ok := out.(R)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %s",
			ErrInvalidResponseType, out, k.response)
	}
	return res, nil
}

// Do dispatches a command, a request with no declared result. It is
// Send with the Unit marker as the response type, so commands flow through
// the same chain-building machinery as queries.
func Do(ctx context.Context, m *Mediator, cmd any) error {
	_, err := Send[Unit](ctx, m, cmd)
	return err
}
