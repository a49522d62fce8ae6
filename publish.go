package mediator

import (
	"context"
	"reflect"
	"sync"
)

// Publish broadcasts a notification to every registered handler. All
// handlers are started concurrently; the call returns only once every one
// of them has completed. A failing handler never cancels its siblings;
// in-flight side effects are allowed to finish.
//
// Zero registered handlers is not an error. When one or more handlers
// fail, Publish returns a *FanOutError carrying every failure in completion
// order, after all handlers have settled.
//
// Pipeline behaviors do not apply to notifications; they wrap
// request/response dispatch only.
func Publish(ctx context.Context, m *Mediator, note any) error {
	if note == nil {
		return ErrNilRequest
	}

	invokers := m.resolver.ResolveMany(reflect.TypeOf(note))
	if len(invokers) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []error
	)
	for _, invoke := range invokers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := invoke(ctx, note); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(failures) > 0 {
		return &FanOutError{Failures: failures}
	}
	return nil
}
