package behavior

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FieldError is a single field-level validation finding.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError short-circuits the pipeline when one or more validators
// report findings. Fields holds the union of every validator's findings,
// in validator registration order.
type ValidationError struct {
	Fields []FieldError
}

// Error lists every field finding.
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mediator: validation failed (%d error(s))", len(e.Fields))
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", f.Field, f.Message)
	}
	return b.String()
}

// Validator checks a request and reports field-level findings. A non-nil
// error is an infrastructure failure of the validator itself, distinct from
// findings, and propagates as-is.
type Validator interface {
	Validate(ctx context.Context, req any) ([]FieldError, error)
}

// ValidatorFunc is a function adapter for Validator.
type ValidatorFunc func(ctx context.Context, req any) ([]FieldError, error)

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(ctx context.Context, req any) ([]FieldError, error) {
	return f(ctx, req)
}

// Rule adapts a typed check into a Validator. Requests of a different type
// validate clean.
func Rule[T any](fn func(ctx context.Context, req T) []FieldError) Validator {
	return ValidatorFunc(func(ctx context.Context, req any) ([]FieldError, error) {
		typed, ok := req.(T)
		if !ok {
			return nil, nil
		}
		return fn(ctx, typed), nil
	})
}

// ValidatorSource resolves the validators bound to a request type. An empty
// slice means the type has no validators.
type ValidatorSource interface {
	For(t reflect.Type) []Validator
}

// Validators is the default ValidatorSource: an in-memory mapping from
// request type to its validators, in registration order.
type Validators struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]Validator
}

// NewValidators returns an empty Validators.
func NewValidators() *Validators {
	return &Validators{byType: make(map[reflect.Type][]Validator)}
}

// AddValidator binds validators to requests of type T.
func AddValidator[T any](v *Validators, vals ...Validator) {
	t := reflect.TypeFor[T]()
	v.mu.Lock()
	v.byType[t] = append(v.byType[t], vals...)
	v.mu.Unlock()
}

// For implements ValidatorSource.
func (v *Validators) For(t reflect.Type) []Validator {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Validator, len(v.byType[t]))
	copy(out, v.byType[t])
	return out
}

// Validation returns a behavior that runs every validator bound to the
// request's type before the continuation. All validators run concurrently
// (they are read-only); their findings are collected into a single union
// in validator order. Any findings short-circuit the pipeline with a
// *ValidationError and the continuation is never called. A type with no
// validators passes straight through, and that fact is memoized so the
// source is not consulted again for the same type.
func Validation(source ValidatorSource) Behavior {
	// Types known to have no validators. Purely a performance memo:
	// populating it twice is harmless.
	var clean sync.Map // reflect.Type → struct{}

	return func(ctx context.Context, req any, next Next) (any, error) {
		t := reflect.TypeOf(req)
		if _, ok := clean.Load(t); ok {
			return next(ctx)
		}

		vals := source.For(t)
		if len(vals) == 0 {
			clean.Store(t, struct{}{})
			return next(ctx)
		}

		// Indexed results keep the union deterministic despite
		// concurrent execution.
		results := make([][]FieldError, len(vals))
		g, gctx := errgroup.WithContext(ctx)
		for i, v := range vals {
			g.Go(func() error {
				findings, err := v.Validate(gctx, req)
				if err != nil {
					return err
				}
				results[i] = findings
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var fields []FieldError
		for _, r := range results {
			fields = append(fields, r...)
		}
		if len(fields) > 0 {
			return nil, &ValidationError{Fields: fields}
		}
		return next(ctx)
	}
}
