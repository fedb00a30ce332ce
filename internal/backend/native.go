package backend

import (
	"context"
	"strings"

	"github.com/1psychoQAQ/my-translator/internal/config"
	"github.com/1psychoQAQ/my-translator/internal/errs"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

// useNative binds the already-probed helper transport as the current
// backend.
func (s *Selector) useNative() {
	t := s.native
	cfg := s.cfg
	s.resolved = config.ModeNative
	s.current = &Descriptor{
		ID:          "native",
		DisplayName: "本地翻译服务",
		IsAvailable: func() bool { return true },
		Translate: func(ctx context.Context, text, sentence string) (string, error) {
			resp, err := t.Call(protocol.ActionTranslate, &protocol.TranslatePayload{
				Text:           text,
				SourceLanguage: cfg.SourceLanguage,
				TargetLanguage: cfg.TargetLanguage,
				Context:        sentence,
			})
			if err != nil {
				return "", err
			}
			if !resp.Success {
				return "", errs.Wrapf(errs.CodeTranslationFailed, "helper: %s", resp.Error)
			}
			if strings.TrimSpace(resp.Translation) == "" {
				return "", errs.New(errs.CodeTranslationEmpty)
			}
			return resp.Translation, nil
		},
		Speak: func(ctx context.Context, text, language string) error {
			resp, err := t.Call(protocol.ActionSpeak, &protocol.SpeakPayload{
				Text:     text,
				Language: language,
			})
			if err != nil {
				return err
			}
			if !resp.Success {
				return errs.Wrapf(errs.CodeTranslationFailed, "helper: %s", resp.Error)
			}
			return nil
		},
	}
}

// SaveWord stores an entry through the helper; only the native backend
// supports it.
func (s *Selector) SaveWord(entry *protocol.SaveWordPayload) error {
	if s.native == nil {
		return errs.Wrapf(errs.CodeSaveFailed, "word saving needs the local helper")
	}
	resp, err := s.native.Call(protocol.ActionSaveWord, entry)
	if err != nil {
		return errs.Wrap(errs.CodeSaveFailed, err)
	}
	if !resp.Success {
		if strings.Contains(resp.Error, string(errs.CodeDuplicateEntry)) {
			return errs.New(errs.CodeDuplicateEntry)
		}
		return errs.Wrapf(errs.CodeSaveFailed, "helper: %s", resp.Error)
	}
	return nil
}
