// Package backend chooses between the local helper process and the
// remote web providers, exposing one uniform translate/speak surface
// to callers regardless of which backend is actually in use.
package backend

import (
	"context"
	"strings"

	"github.com/1psychoQAQ/my-translator/internal/cache"
	"github.com/1psychoQAQ/my-translator/internal/config"
	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

// Descriptor is a resolved backend: a record of capabilities, not a
// class hierarchy. Speak is nil when the backend cannot speak.
type Descriptor struct {
	ID          string
	DisplayName string
	Translate   func(ctx context.Context, text, sentence string) (string, error)
	IsAvailable func() bool
	Speak       func(ctx context.Context, text, language string) error
}

// NativeTransport is the slice of the transport client the selector
// needs; tests substitute a scripted implementation.
type NativeTransport interface {
	Call(action protocol.Action, payload any) (*protocol.Response, error)
	Ping() (string, error)
	Close() error
}

// NativeDialer opens a transport to the helper binary.
type NativeDialer func(binary string) (NativeTransport, error)

// Selector resolves the configured mode to one current backend and
// delegates every call to it. It is rebuilt wholesale by Initialize;
// there is no per-call re-selection.
type Selector struct {
	cfg    *config.Config
	dial   NativeDialer
	cache  *cache.Cache
	native NativeTransport

	current  *Descriptor
	resolved config.Mode
}

// NewSelector creates a selector bound to one configuration snapshot.
// Configuration changes construct a new snapshot and call Initialize
// again rather than mutating this one in place.
func NewSelector(cfg *config.Config, dial NativeDialer) *Selector {
	return &Selector{cfg: cfg, dial: dial, cache: cache.New()}
}

// Initialize resolves the backend for the configured mode. It clears
// the result cache, since cached values may have been produced by a
// different backend. Not safe to run concurrently with in-flight
// calls; callers serialize configuration changes.
func (s *Selector) Initialize() error {
	s.cache.Clear()
	if s.native != nil {
		_ = s.native.Close()
		s.native = nil
	}

	switch s.cfg.Mode {
	case config.ModeWeb:
		return s.useWeb()
	case config.ModeNative, config.ModeAuto:
		if s.probeNative() {
			s.useNative()
			return nil
		}
		return s.useWeb()
	default:
		return errs.Wrapf(errs.CodeTranslationFailed, "invalid mode %q", s.cfg.Mode)
	}
}

// probeNative pings the helper once; the transport timeout bounds it.
func (s *Selector) probeNative() bool {
	t, err := s.dial(s.cfg.HelperBinary)
	if err != nil {
		return false
	}
	if _, err := t.Ping(); err != nil {
		_ = t.Close()
		return false
	}
	s.native = t
	return true
}

// ResolvedMode reports the backend actually in use, as opposed to the
// configured preference.
func (s *Selector) ResolvedMode() config.Mode { return s.resolved }

// IsNativeAvailable reports whether the helper answered the probe.
func (s *Selector) IsNativeAvailable() bool { return s.resolved == config.ModeNative }

// Current returns the resolved descriptor.
func (s *Selector) Current() *Descriptor { return s.current }

// Translate serves from the cache when possible, otherwise delegates
// to the current backend and memoizes the result.
func (s *Selector) Translate(ctx context.Context, text, sentence string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errs.New(errs.CodeTranslationEmpty)
	}
	if s.current == nil {
		return "", errs.Wrapf(errs.CodeTranslationFailed, "selector not initialized")
	}

	if translation, ok := s.cache.Get(text); ok {
		return translation, nil
	}

	translation, err := s.current.Translate(ctx, text, sentence)
	if err != nil {
		return "", err
	}
	s.cache.Set(text, translation)
	return translation, nil
}

// Speak delegates to the current backend.
func (s *Selector) Speak(ctx context.Context, text, language string) error {
	if strings.TrimSpace(text) == "" {
		return errs.New(errs.CodeTranslationEmpty)
	}
	if s.current == nil || s.current.Speak == nil {
		return errs.Wrapf(errs.CodeTranslationFailed, "speech not supported by %s backend", s.resolved)
	}
	return s.current.Speak(ctx, text, language)
}

// ClearCache drops memoized translations; exposed for callers that
// change languages without a full re-initialization.
func (s *Selector) ClearCache() { s.cache.Clear() }

// Close releases the native transport if one is held.
func (s *Selector) Close() error {
	if s.native != nil {
		return s.native.Close()
	}
	return nil
}
