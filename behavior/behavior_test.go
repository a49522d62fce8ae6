package behavior_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TristanKalmbach/MediatorNet/behavior"
)

type echoQuery struct {
	Text string
}

func TestChain_ExecutionOrder(t *testing.T) {
	var order []string

	b1 := func(ctx context.Context, _ any, next behavior.Next) (any, error) {
		order = append(order, "b1-before")
		out, err := next(ctx)
		order = append(order, "b1-after")
		return out, err
	}

	b2 := func(ctx context.Context, _ any, next behavior.Next) (any, error) {
		order = append(order, "b2-before")
		out, err := next(ctx)
		order = append(order, "b2-after")
		return out, err
	}

	chain := behavior.Chain(b1, b2)
	terminal := func(_ context.Context) (any, error) {
		order = append(order, "handler")
		return "ok", nil
	}

	out, err := chain(context.Background(), echoQuery{Text: "hi"}, terminal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" {
		t.Fatalf("expected %q, got %v", "ok", out)
	}

	expected := []string{"b1-before", "b2-before", "handler", "b2-after", "b1-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, want := range expected {
		if order[i] != want {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	chain := behavior.Chain()
	called := false
	terminal := func(_ context.Context) (any, error) {
		called = true
		return 42, nil
	}

	out, err := chain(context.Background(), echoQuery{}, terminal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("terminal not called with empty chain")
	}
	if out != 42 {
		t.Fatalf("expected 42, got %v", out)
	}
}

func TestChain_PropagatesError(t *testing.T) {
	b := func(ctx context.Context, _ any, next behavior.Next) (any, error) {
		return next(ctx)
	}
	chain := behavior.Chain(b)
	want := errors.New("handler error")

	_, err := chain(context.Background(), echoQuery{}, func(_ context.Context) (any, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestChain_ShortCircuit(t *testing.T) {
	shortCircuit := func(_ context.Context, _ any, _ behavior.Next) (any, error) {
		return "cached", nil
	}
	chain := behavior.Chain(shortCircuit)

	terminalCalled := false
	out, err := chain(context.Background(), echoQuery{}, func(_ context.Context) (any, error) {
		terminalCalled = true
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if terminalCalled {
		t.Fatal("terminal called despite short-circuiting behavior")
	}
	if out != "cached" {
		t.Fatalf("expected %q, got %v", "cached", out)
	}
}

func TestChain_BehaviorMayRetry(t *testing.T) {
	attempts := 0
	retry := func(ctx context.Context, _ any, next behavior.Next) (any, error) {
		out, err := next(ctx)
		if err != nil {
			return next(ctx)
		}
		return out, err
	}
	chain := behavior.Chain(retry)

	out, err := chain(context.Background(), echoQuery{}, func(_ context.Context) (any, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("transient")
		}
		return "second try", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
	if out != "second try" {
		t.Fatalf("expected %q, got %v", "second try", out)
	}
}
