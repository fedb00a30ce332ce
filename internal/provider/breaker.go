package provider

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// WithBreaker wraps a provider in a circuit breaker so a provider that
// keeps failing is skipped immediately for a while instead of burning
// its full endpoint timeout on every call. An open breaker reads as a
// plain provider failure and feeds the usual fallback path.
func WithBreaker(p Provider) Provider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.ID(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &breakerProvider{inner: p, cb: cb}
}

type breakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

func (b *breakerProvider) ID() string          { return b.inner.ID() }
func (b *breakerProvider) DisplayName() string { return b.inner.DisplayName() }

func (b *breakerProvider) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return b.inner.Translate(ctx, text, targetLang, sourceLang)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Result), nil
}
