package mediator

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"sync"

	"github.com/TristanKalmbach/MediatorNet/behavior"
)

// RequestInvoker is a type-erased handler invocation thunk. The concrete
// request and response types are captured at registration time, when they
// are still known to the compiler; dispatch needs only type identity.
type RequestInvoker func(ctx context.Context, req any) (any, error)

// NotificationInvoker is a type-erased notification handler thunk.
type NotificationInvoker func(ctx context.Context, note any) error

// StreamInvoker is a type-erased stream handler thunk. Elements are erased
// to any; Stream converts them back to the caller's element type.
type StreamInvoker func(ctx context.Context, req any) iter.Seq2[any, error]

// Resolver is the lookup contract the dispatch engine consumes. The default
// implementation is *Registry; applications with a DI container can supply
// their own.
//
// ResolveOne and ResolveStream fail with ErrHandlerNotFound when nothing is
// registered for the pair. ResolveMany and ResolveBehaviors return empty
// slices, never an error; behavior order is registration order.
type Resolver interface {
	ResolveOne(request, response reflect.Type) (RequestInvoker, error)
	ResolveMany(notification reflect.Type) []NotificationInvoker
	ResolveStream(request, element reflect.Type) (StreamInvoker, error)
	ResolveBehaviors(request, response reflect.Type) []behavior.Behavior
}

// pair is the routing key: request type plus response (or element) type.
type pair struct {
	request  reflect.Type
	response reflect.Type
}

// Registry is the default Resolver. Registration is explicit and generic:
// the Register functions capture concrete types and store erased invocation
// thunks keyed by the (request, response) pair.
//
// Registration is safe for concurrent use but is expected to complete before
// the first dispatch; the Mediator memoizes per-pair behavior chains on
// first use. Registering the same pair twice replaces the earlier handler;
// last registration wins.
type Registry struct {
	mu       sync.RWMutex
	handlers map[pair]RequestInvoker
	notes    map[reflect.Type][]NotificationInvoker
	streams  map[pair]StreamInvoker
	global   []behavior.Behavior
	perPair  map[pair][]behavior.Behavior
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[pair]RequestInvoker),
		notes:    make(map[reflect.Type][]NotificationInvoker),
		streams:  make(map[pair]StreamInvoker),
		perPair:  make(map[pair][]behavior.Behavior),
	}
}

// RegisterHandler binds h as the single handler for the (T, R) pair.
func RegisterHandler[T, R any](r *Registry, h Handler[T, R]) {
	k := pair{request: reflect.TypeFor[T](), response: reflect.TypeFor[R]()}
	invoke := func(ctx context.Context, req any) (any, error) {
		return h.Handle(ctx, req.(T))
	}
	r.mu.Lock()
	r.handlers[k] = invoke
	r.mu.Unlock()
}

// commandAdapter lifts a CommandHandler into the result-typed machinery:
// it returns Unit after the handler completes.
type commandAdapter[T any] struct {
	h CommandHandler[T]
}

func (a commandAdapter[T]) Handle(ctx context.Context, cmd T) (Unit, error) {
	if err := a.h.Handle(ctx, cmd); err != nil {
		return Unit{}, err
	}
	return Unit{}, nil
}

// RegisterCommandHandler binds h as the single handler for commands of type
// T, routed under the (T, Unit) pair.
func RegisterCommandHandler[T any](r *Registry, h CommandHandler[T]) {
	RegisterHandler[T, Unit](r, commandAdapter[T]{h: h})
}

// RegisterNotificationHandler adds h to the fan-out set for notifications of
// type T. Handlers are resolved in registration order, though Publish starts
// them concurrently and completion order is not defined.
func RegisterNotificationHandler[T any](r *Registry, h NotificationHandler[T]) {
	t := reflect.TypeFor[T]()
	invoke := func(ctx context.Context, note any) error {
		return h.Handle(ctx, note.(T))
	}
	r.mu.Lock()
	r.notes[t] = append(r.notes[t], invoke)
	r.mu.Unlock()
}

// RegisterStreamHandler binds h as the single stream handler for the (T, R)
// pair.
func RegisterStreamHandler[T, R any](r *Registry, h StreamHandler[T, R]) {
	k := pair{request: reflect.TypeFor[T](), response: reflect.TypeFor[R]()}
	invoke := func(ctx context.Context, req any) iter.Seq2[any, error] {
		src := h.Handle(ctx, req.(T))
		return func(yield func(any, error) bool) {
			for v, err := range src {
				if !yield(v, err) {
					return
				}
			}
		}
	}
	r.mu.Lock()
	r.streams[k] = invoke
	r.mu.Unlock()
}

// Use appends behaviors that apply to every request/response pair, in
// registration order.
func (r *Registry) Use(behaviors ...behavior.Behavior) {
	r.mu.Lock()
	r.global = append(r.global, behaviors...)
	r.mu.Unlock()
}

// UseFor appends a typed behavior scoped to the (T, R) pair. Pair-scoped
// behaviors run after all global behaviors, in registration order.
func UseFor[T, R any](r *Registry, b behavior.Typed[T, R]) {
	k := pair{request: reflect.TypeFor[T](), response: reflect.TypeFor[R]()}
	erased := func(ctx context.Context, req any, next behavior.Next) (any, error) {
		typedNext := func(ctx context.Context) (R, error) {
			var zero R
			out, err := next(ctx)
			if err != nil {
				return zero, err
			}
			res, ok := out.(R)
			if !ok {
				return zero, fmt.Errorf("%w: got %T, want %s",
					ErrInvalidResponseType, out, reflect.TypeFor[R]())
			}
			return res, nil
		}
		out, err := b(ctx, req.(T), typedNext)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	r.mu.Lock()
	r.perPair[k] = append(r.perPair[k], erased)
	r.mu.Unlock()
}

// ResolveOne implements Resolver.
func (r *Registry) ResolveOne(request, response reflect.Type) (RequestInvoker, error) {
	r.mu.RLock()
	invoke, ok := r.handlers[pair{request: request, response: response}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for request %s and response %s",
			ErrHandlerNotFound, request, response)
	}
	return invoke, nil
}

// ResolveMany implements Resolver. It returns an empty slice, never an
// error, when no handlers are registered.
func (r *Registry) ResolveMany(notification reflect.Type) []NotificationInvoker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]NotificationInvoker, len(r.notes[notification]))
	copy(out, r.notes[notification])
	return out
}

// ResolveStream implements Resolver.
func (r *Registry) ResolveStream(request, element reflect.Type) (StreamInvoker, error) {
	r.mu.RLock()
	invoke, ok := r.streams[pair{request: request, response: element}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for stream request %s with element %s",
			ErrHandlerNotFound, request, element)
	}
	return invoke, nil
}

// ResolveBehaviors implements Resolver: global behaviors first, then
// pair-scoped ones, each in registration order.
func (r *Registry) ResolveBehaviors(request, response reflect.Type) []behavior.Behavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scoped := r.perPair[pair{request: request, response: response}]
	out := make([]behavior.Behavior, 0, len(r.global)+len(scoped))
	out = append(out, r.global...)
	out = append(out, scoped...)
	return out
}
