// Package mediator provides in-process request routing with composable
// pipeline behaviors. It decouples "what should happen" (a typed request or
// notification value) from "who handles it" (a registered handler), while
// cross-cutting concerns such as logging, validation, and caching wrap
// handler execution without touching handler code.
//
// Mediator is a library, not a service. Register handlers against a
// Registry, create a Mediator, and dispatch plain Go values.
//
// # Quick Start
//
//	r := mediator.NewRegistry()
//	mediator.RegisterHandler[GetUser, User](r, &getUserHandler{db: db})
//	r.Use(behavior.Logging(logger))
//
//	m, err := mediator.New(mediator.WithResolver(r))
//	user, err := mediator.Send[User](ctx, m, GetUser{ID: 42})
//
// # Dispatch Variants
//
// Send routes a request to exactly one handler and returns its typed
// response. Do is the command form: the handler produces no meaningful
// result, so it flows through the same machinery as Send with the Unit
// marker as its response type. Publish broadcasts a notification to every
// registered handler concurrently. Stream resolves a single stream handler
// and returns its lazy element sequence.
//
// # Behaviors
//
// Behaviors wrap handler execution in registration order: the first
// registered behavior is the outermost call. A behavior receives the request
// and a continuation representing the rest of the pipeline, and may pass
// through, short-circuit, or transform the result. See the behavior package
// for the built-in set.
package mediator
