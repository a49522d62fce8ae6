package mediator

import (
	"context"
	"iter"
)

// Handler processes a request of type T and produces a response of type R.
// Exactly one handler may serve a given (T, R) pair; the pair is the routing
// key used by Send.
//
// Example:
//
//	type getUserHandler struct {
//	    db *sql.DB
//	}
//
//	func (h *getUserHandler) Handle(ctx context.Context, q GetUser) (User, error) {
//	    // load and return the user
//	}
type Handler[T, R any] interface {
	Handle(ctx context.Context, req T) (R, error)
}

// HandlerFunc is a function adapter for Handler. Use for simple handlers
// that don't need a struct:
//
//	mediator.RegisterHandler[Echo, string](r, mediator.HandlerFunc[Echo, string](
//	    func(ctx context.Context, q Echo) (string, error) { return q.Text, nil },
//	))
type HandlerFunc[T, R any] func(ctx context.Context, req T) (R, error)

// Handle implements the Handler interface.
func (f HandlerFunc[T, R]) Handle(ctx context.Context, req T) (R, error) {
	return f(ctx, req)
}

// CommandHandler processes a request that declares no result. It is routed
// under the (T, Unit) pair so commands and queries share one dispatch path.
type CommandHandler[T any] interface {
	Handle(ctx context.Context, cmd T) error
}

// CommandHandlerFunc is a function adapter for CommandHandler.
type CommandHandlerFunc[T any] func(ctx context.Context, cmd T) error

// Handle implements the CommandHandler interface.
func (f CommandHandlerFunc[T]) Handle(ctx context.Context, cmd T) error {
	return f(ctx, cmd)
}

// NotificationHandler reacts to a broadcast notification of type T. Any
// number of handlers may be registered for the same notification type;
// Publish starts all of them concurrently.
type NotificationHandler[T any] interface {
	Handle(ctx context.Context, note T) error
}

// NotificationHandlerFunc is a function adapter for NotificationHandler.
type NotificationHandlerFunc[T any] func(ctx context.Context, note T) error

// Handle implements the NotificationHandler interface.
func (f NotificationHandlerFunc[T]) Handle(ctx context.Context, note T) error {
	return f(ctx, note)
}

// StreamHandler produces a lazy sequence of R elements for a stream request
// of type T. The sequence may be finite or infinite; production must observe
// ctx and stop promptly when it is cancelled. Element-level failures are
// yielded as the second sequence value.
type StreamHandler[T, R any] interface {
	Handle(ctx context.Context, req T) iter.Seq2[R, error]
}

// StreamHandlerFunc is a function adapter for StreamHandler.
type StreamHandlerFunc[T, R any] func(ctx context.Context, req T) iter.Seq2[R, error]

// Handle implements the StreamHandler interface.
func (f StreamHandlerFunc[T, R]) Handle(ctx context.Context, req T) iter.Seq2[R, error] {
	return f(ctx, req)
}
