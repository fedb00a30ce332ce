// Package provider implements the remote web translation providers the
// client falls back to when the local helper process is unreachable.
package provider

import (
	"context"
	"fmt"
	"time"
)

// endpointTimeout bounds each individual network call; the google
// mirror loop relies on it to move on to the next mirror quickly.
const endpointTimeout = 10 * time.Second

// Result is a successful provider translation.
type Result struct {
	Translation string
}

// Provider is one remote translation backend.
type Provider interface {
	ID() string
	DisplayName() string
	Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error)
}

// Options carries the credentials providers may need. Providers ignore
// fields they have no use for.
type Options struct {
	OpenAIKey string
	GeminiKey string
	BingKey   string
}

// IDs of the shipped providers.
const (
	IDGoogle = "google"
	IDBing   = "bing"
	IDOpenAI = "openai"
	IDGemini = "gemini"
)

// New creates the provider with the given id.
func New(id string, opts Options) (Provider, error) {
	switch id {
	case IDGoogle:
		return NewGoogle(), nil
	case IDBing:
		return NewBing(opts.BingKey), nil
	case IDOpenAI:
		return NewOpenAI(opts.OpenAIKey), nil
	case IDGemini:
		return NewGemini(opts.GeminiKey), nil
	default:
		return nil, fmt.Errorf("unknown web provider: %s", id)
	}
}

// NewWithFallback builds the primary provider plus the standard
// secondary: google, unless google itself is primary, then bing.
func NewWithFallback(primaryID string, opts Options) (Provider, error) {
	primary, err := New(primaryID, opts)
	if err != nil {
		return nil, err
	}
	secondaryID := IDGoogle
	if primaryID == IDGoogle {
		secondaryID = IDBing
	}
	secondary, err := New(secondaryID, opts)
	if err != nil {
		return nil, err
	}
	return NewFallback(WithBreaker(primary), WithBreaker(secondary)), nil
}
