package provider

import (
	"context"
	"errors"
	"testing"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &scriptedProvider{id: "flaky", err: errors.New("down")}
	p := WithBreaker(inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := p.Translate(ctx, "hello", "zh-Hans", "en"); err == nil {
			t.Fatal("Expected failure")
		}
	}
	if inner.calls != 3 {
		t.Fatalf("Expected 3 attempts before the breaker opens, got %d", inner.calls)
	}

	// Breaker is open now: the provider itself must not be reached.
	if _, err := p.Translate(ctx, "hello", "zh-Hans", "en"); err == nil {
		t.Error("Open breaker should fail the call")
	}
	if inner.calls != 3 {
		t.Errorf("Open breaker must short-circuit, provider saw %d calls", inner.calls)
	}
}

func TestBreakerPassesSuccessThrough(t *testing.T) {
	inner := &scriptedProvider{id: "ok", result: "你好"}
	p := WithBreaker(inner)

	result, err := p.Translate(context.Background(), "hello", "zh-Hans", "en")
	if err != nil {
		t.Fatal(err)
	}
	if result.Translation != "你好" {
		t.Errorf("Expected 你好, got %q", result.Translation)
	}
	if p.ID() != "ok" {
		t.Errorf("Breaker should keep the inner id, got %s", p.ID())
	}
}
