package backend

import (
	"context"

	"github.com/1psychoQAQ/my-translator/internal/config"
	"github.com/1psychoQAQ/my-translator/internal/provider"
)

// webProviderFactory builds the fallback-wrapped provider chain; tests
// swap it for scripted providers.
var webProviderFactory = provider.NewWithFallback

// useWeb builds the web-provider backend for the configured provider.
func (s *Selector) useWeb() error {
	prov, err := webProviderFactory(s.cfg.WebProvider, provider.Options{
		OpenAIKey: s.cfg.OpenAIKey,
		GeminiKey: s.cfg.GeminiKey,
		BingKey:   s.cfg.BingKey,
	})
	if err != nil {
		return err
	}

	cfg := s.cfg
	s.resolved = config.ModeWeb
	s.current = &Descriptor{
		ID:          prov.ID(),
		DisplayName: prov.DisplayName(),
		IsAvailable: func() bool { return true },
		Translate: func(ctx context.Context, text, sentence string) (string, error) {
			// Web providers have no context-warming concept; the
			// sentence is dropped.
			result, err := prov.Translate(ctx, text, cfg.TargetLanguage, cfg.SourceLanguage)
			if err != nil {
				return "", err
			}
			return result.Translation, nil
		},
		// Web backends cannot speak; Speak stays nil.
	}
	return nil
}
