package provider

import (
	"context"
	"fmt"
)

// Fallback tries the primary provider and retries exactly once against
// the secondary. When both fail the primary's error propagates: the
// primary is the user's configured preference, so its failure reason is
// the actionable one.
type Fallback struct {
	primary   Provider
	secondary Provider
}

// NewFallback pairs two providers.
func NewFallback(primary, secondary Provider) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

func (f *Fallback) ID() string { return f.primary.ID() }

func (f *Fallback) DisplayName() string {
	return fmt.Sprintf("%s (备用: %s)", f.primary.DisplayName(), f.secondary.DisplayName())
}

func (f *Fallback) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	result, primaryErr := f.primary.Translate(ctx, text, targetLang, sourceLang)
	if primaryErr == nil {
		return result, nil
	}

	result, secondaryErr := f.secondary.Translate(ctx, text, targetLang, sourceLang)
	if secondaryErr == nil {
		return result, nil
	}
	return nil, primaryErr
}
