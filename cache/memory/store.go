// Package memory provides a fully in-memory cache.Store. Safe for
// concurrent access. Intended for unit testing, development, and
// single-process deployments.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/TristanKalmbach/MediatorNet/cache"
)

// Ensure Store implements cache.Store at compile time.
var _ cache.Store = (*Store)(nil)

// DefaultMaxEntries is the default entry cap before eviction kicks in.
const DefaultMaxEntries = 4096

type entry struct {
	value     any
	expiresAt time.Time // zero means no expiry
	priority  cache.Priority
	storedAt  time.Time
}

// Store is an in-memory cache with TTL expiry and priority-aware eviction:
// when full, expired entries are purged first, then the lowest-priority,
// oldest entry is evicted.
type Store struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	now        func() time.Time
}

// Option configures the Store.
type Option func(*Store)

// WithMaxEntries sets the entry cap. Zero or negative disables the cap.
func WithMaxEntries(n int) Option {
	return func(s *Store) { s.maxEntries = n }
}

// WithClock overrides the time source. Used by tests to exercise expiry
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a new empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries:    make(map[string]entry),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements cache.Store. dst must be a non-nil pointer whose element
// type the stored value is assignable to.
func (s *Store) Get(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return false, nil
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, fmt.Errorf("memory: dst must be a non-nil pointer, got %T", dst)
	}
	elem := rv.Elem()
	if e.value == nil {
		elem.Set(reflect.Zero(elem.Type()))
		return true, nil
	}
	ev := reflect.ValueOf(e.value)
	if !ev.Type().AssignableTo(elem.Type()) {
		return false, fmt.Errorf("memory: cached value %s not assignable to %s",
			ev.Type(), elem.Type())
	}
	elem.Set(ev)
	return true, nil
}

// Set implements cache.Store.
func (s *Store) Set(_ context.Context, key string, value any, ttl time.Duration, priority cache.Priority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[key]; !exists && s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.evictLocked(now)
	}

	e := entry{value: value, priority: priority, storedAt: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.entries[key] = e
	return nil
}

// Len returns the current number of entries, counting expired ones not yet
// purged.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evictLocked frees one slot: expired entries first, then the
// lowest-priority, oldest entry. Caller holds s.mu.
func (s *Store) evictLocked(now time.Time) {
	purged := false
	for k, e := range s.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.entries, k)
			purged = true
		}
	}
	if purged {
		return
	}

	var victim string
	var found bool
	for k, e := range s.entries {
		if !found {
			victim, found = k, true
			continue
		}
		v := s.entries[victim]
		if e.priority < v.priority || (e.priority == v.priority && e.storedAt.Before(v.storedAt)) {
			victim = k
		}
	}
	if found {
		delete(s.entries, victim)
	}
}
