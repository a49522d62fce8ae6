package behavior_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TristanKalmbach/MediatorNet/behavior"
)

func TestTimeout_SetsDeadline(t *testing.T) {
	b := behavior.Timeout(time.Second)

	_, err := b(context.Background(), echoQuery{}, func(ctx context.Context) (any, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the handler context")
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTimeout_CancelsSlowHandler(t *testing.T) {
	b := behavior.Timeout(10 * time.Millisecond)

	_, err := b(context.Background(), echoQuery{}, func(ctx context.Context) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return "too late", nil
		}
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

func TestTimeout_ZeroIsPassThrough(t *testing.T) {
	b := behavior.Timeout(0)

	_, err := b(context.Background(), echoQuery{}, func(ctx context.Context) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			t.Error("expected no deadline for zero timeout")
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
