package mediator

import (
	"log/slog"
	"sync"

	"github.com/TristanKalmbach/MediatorNet/behavior"
)

// Option configures a Mediator.
type Option func(*Mediator) error

// Mediator is the dispatch engine: it resolves handlers through a Resolver,
// composes the behavior chain for each request/response pair, and drives
// execution. Create one with New and functional options.
//
// A Mediator holds no request state between calls. Its only mutable state
// is the memoized per-pair behavior chain, which is safe for concurrent
// reads and idempotent concurrent writes.
type Mediator struct {
	resolver Resolver
	logger   *slog.Logger

	// chains memoizes the composed behavior chain per (request, response)
	// pair. The behavior set for a pair never changes once registration is
	// complete, so a lost race to populate an entry is harmless.
	chains sync.Map // pair → behavior.Behavior
}

// New creates a new Mediator with the given options. Without WithResolver
// it uses a fresh, empty Registry.
func New(opts ...Option) (*Mediator, error) {
	m := &Mediator{
		resolver: NewRegistry(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Logger returns the mediator's logger.
func (m *Mediator) Logger() *slog.Logger { return m.logger }

// Resolver returns the mediator's resolver.
func (m *Mediator) Resolver() Resolver { return m.resolver }

// WithLogger sets the structured logger for the mediator.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mediator) error {
		m.logger = l
		return nil
	}
}

// WithResolver sets the handler lookup backend for the mediator. Typically
// this is a *Registry populated by the application's registration step.
func WithResolver(r Resolver) Option {
	return func(m *Mediator) error {
		if r == nil {
			return ErrNilResolver
		}
		m.resolver = r
		return nil
	}
}

// chainFor returns the composed behavior chain for a pair, building and
// memoizing it on first use.
func (m *Mediator) chainFor(k pair) behavior.Behavior {
	if v, ok := m.chains.Load(k); ok {
		return v.(behavior.Behavior)
	}
	composed := behavior.Chain(m.resolver.ResolveBehaviors(k.request, k.response)...)
	actual, _ := m.chains.LoadOrStore(k, composed)
	return actual.(behavior.Behavior)
}
