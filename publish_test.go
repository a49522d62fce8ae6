package mediator_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mediator "github.com/TristanKalmbach/MediatorNet"
)

type userCreated struct {
	ID int
}

func TestPublish_FansOutToAllHandlers(t *testing.T) {
	reg := mediator.NewRegistry()
	var calls atomic.Int32
	for range 3 {
		mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
			func(_ context.Context, n userCreated) error {
				calls.Add(1)
				return nil
			}))
	}
	m := newMediator(t, reg)

	if err := mediator.Publish(context.Background(), m, userCreated{ID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 handler calls, got %d", calls.Load())
	}
}

func TestPublish_ZeroHandlersIsNoop(t *testing.T) {
	m := newMediator(t, mediator.NewRegistry())

	if err := mediator.Publish(context.Background(), m, userCreated{}); err != nil {
		t.Fatalf("expected nil for unhandled notification, got %v", err)
	}
}

func TestPublish_NilNotification(t *testing.T) {
	m := newMediator(t, mediator.NewRegistry())

	if err := mediator.Publish(context.Background(), m, nil); !errors.Is(err, mediator.ErrNilRequest) {
		t.Fatalf("expected ErrNilRequest, got %v", err)
	}
}

func TestPublish_WaitsForSlowestHandler(t *testing.T) {
	reg := mediator.NewRegistry()
	var slowDone atomic.Bool
	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error {
			return nil
		}))
	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error {
			time.Sleep(50 * time.Millisecond)
			slowDone.Store(true)
			return nil
		}))
	m := newMediator(t, reg)

	if err := mediator.Publish(context.Background(), m, userCreated{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slowDone.Load() {
		t.Fatal("Publish returned before the slowest handler completed")
	}
}

func TestPublish_CollectsAllFailures(t *testing.T) {
	reg := mediator.NewRegistry()
	errA := errors.New("audit write failed")
	errB := errors.New("mail send failed")
	var okRan atomic.Bool

	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error { return errA }))
	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error {
			okRan.Store(true)
			return nil
		}))
	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error { return errB }))
	m := newMediator(t, reg)

	err := mediator.Publish(context.Background(), m, userCreated{ID: 2})
	if err == nil {
		t.Fatal("expected a fan-out error")
	}

	var fanOut *mediator.FanOutError
	if !errors.As(err, &fanOut) {
		t.Fatalf("expected *FanOutError, got %T", err)
	}
	if len(fanOut.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(fanOut.Failures))
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both handler errors to match via errors.Is, got %v", err)
	}
	if !okRan.Load() {
		t.Fatal("a failing sibling must not prevent a healthy handler from running")
	}
}

func TestPublish_FailureDoesNotCancelSiblings(t *testing.T) {
	reg := mediator.NewRegistry()
	var slowCompleted atomic.Bool

	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(_ context.Context, n userCreated) error {
			return errors.New("instant failure")
		}))
	mediator.RegisterNotificationHandler(reg, mediator.NotificationHandlerFunc[userCreated](
		func(ctx context.Context, n userCreated) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(50 * time.Millisecond):
				slowCompleted.Store(true)
				return nil
			}
		}))
	m := newMediator(t, reg)

	err := mediator.Publish(context.Background(), m, userCreated{})
	var fanOut *mediator.FanOutError
	if !errors.As(err, &fanOut) {
		t.Fatalf("expected *FanOutError, got %v", err)
	}
	if len(fanOut.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(fanOut.Failures))
	}
	if !slowCompleted.Load() {
		t.Fatal("sibling handler was interrupted by an unrelated failure")
	}
}
