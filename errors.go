package mediator

import (
	"errors"
	"fmt"
)

var (
	// ErrHandlerNotFound is returned when no handler is registered for a
	// request/response pair or a stream request. It surfaces when the
	// terminal continuation is invoked, never at chain-build time, so a
	// short-circuiting behavior (e.g. a warm cache) can answer a request
	// that has no backing handler.
	ErrHandlerNotFound = errors.New("mediator: no handler registered")

	// ErrNilRequest is returned when a nil request or notification value
	// is dispatched.
	ErrNilRequest = errors.New("mediator: nil request")

	// ErrNilResolver is returned by New when WithResolver is given nil.
	ErrNilResolver = errors.New("mediator: nil resolver")

	// ErrInvalidResponseType is returned when a handler or behavior
	// produces a value that does not match the response type the caller
	// asked for.
	ErrInvalidResponseType = errors.New("mediator: invalid response type")
)

// FanOutError reports notification handler failures from Publish. Every
// handler runs to completion before it is returned; Failures holds each
// handler error in completion order, so Failures[0] is the first to fail.
type FanOutError struct {
	Failures []error
}

// Error returns the first failure and the total count.
func (e *FanOutError) Error() string {
	return fmt.Sprintf("mediator: %d notification handler(s) failed, first: %v",
		len(e.Failures), e.Failures[0])
}

// Unwrap exposes every handler failure for errors.Is / errors.As matching.
func (e *FanOutError) Unwrap() []error { return e.Failures }
