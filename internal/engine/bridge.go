package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

// contextWarmupMaxTokens is the phrase length (whitespace tokens) up to
// which a surrounding sentence is translated first to warm the engine's
// contextual disambiguation.
const contextWarmupMaxTokens = 3

type pendingRequest struct {
	text    string
	context string
	source  string
	target  string
	done    chan pendingResult
}

type pendingResult struct {
	translation string
	err         error
}

// Bridge adapts the event-driven Engine into awaitable Translate calls.
//
// It holds a single pending-request slot: a request stores its text,
// language pair and completion channel there, triggers configuration,
// and suspends until the session-ready callback resolves it. The
// message router dispatches strictly sequentially, so at most one
// request is ever pending; the mutex only guards the slot and the
// session cache against the engine's callback goroutine, most
// importantly when a caller stops waiting before the callback fires.
//
// sessionSource/sessionTarget record the pair the cached session was
// actually configured for. They are written only when a ready event
// delivers the session, never when a request merely asks for a pair.
type Bridge struct {
	engine Engine

	mu            sync.Mutex
	session       Session
	sessionSource string
	sessionTarget string
	pending       *pendingRequest
}

// NewBridge wires the bridge as the engine's session-ready listener.
func NewBridge(e Engine) *Bridge {
	b := &Bridge{engine: e}
	e.OnSessionReady(b.sessionReady)
	return b
}

// Translate returns the translation of text for the given pair. A call
// with the pair of the cached session skips configuration entirely.
func (b *Bridge) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	return b.TranslateWithContext(ctx, text, sourceLanguage, targetLanguage, "")
}

// TranslateWithContext additionally accepts the sentence surrounding a
// short phrase. For phrases of at most three tokens the sentence is
// translated first and its result discarded, which measurably improves
// short-phrase quality at the cost of one extra engine call.
func (b *Bridge) TranslateWithContext(ctx context.Context, text, sourceLanguage, targetLanguage, sentence string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errs.New(errs.CodeTranslationEmpty)
	}
	if !wantsWarmup(text, sentence) {
		sentence = ""
	}

	b.mu.Lock()
	if b.session != nil && b.sessionSource == sourceLanguage && b.sessionTarget == targetLanguage {
		s := b.session
		b.mu.Unlock()
		return b.runOnSession(ctx, s, text, sentence)
	}

	req := &pendingRequest{
		text:    text,
		context: sentence,
		source:  sourceLanguage,
		target:  targetLanguage,
		done:    make(chan pendingResult, 1),
	}
	b.pending = req
	b.mu.Unlock()

	b.engine.Configure(sourceLanguage, targetLanguage)

	select {
	case res := <-req.done:
		return res.translation, res.err
	case <-ctx.Done():
		// Abandon the slot. A ready event that arrives after this
		// point must not resolve into a request nobody waits on.
		b.mu.Lock()
		if b.pending == req {
			b.pending = nil
		}
		b.mu.Unlock()
		return "", errs.Wrap(errs.CodeTimeout, ctx.Err())
	}
}

// sessionReady runs when the engine finishes establishing a session.
// It performs the pending translation and caches the session under the
// pair the pending request asked for.
func (b *Bridge) sessionReady(s Session, err error) {
	b.mu.Lock()
	req := b.pending
	b.pending = nil

	if err != nil {
		b.session = nil
		b.sessionSource, b.sessionTarget = "", ""
		b.mu.Unlock()
		if req != nil {
			req.done <- pendingResult{err: errs.Wrap(errs.CodeTranslationFailed, err)}
		}
		return
	}
	if req == nil {
		// The caller stopped waiting before the session came up, and
		// its language pair went with it, so the session cannot be
		// cached under any pair.
		b.mu.Unlock()
		return
	}
	b.session = s
	b.sessionSource = req.source
	b.sessionTarget = req.target
	b.mu.Unlock()

	translation, terr := b.runOnSession(context.Background(), s, req.text, req.context)
	req.done <- pendingResult{translation: translation, err: terr}
}

func (b *Bridge) runOnSession(ctx context.Context, s Session, text, sentence string) (string, error) {
	if sentence != "" {
		// Warm-up call; the sentence translation itself is discarded.
		if _, err := s.Translate(ctx, sentence); err != nil {
			return "", errs.Wrap(errs.CodeTranslationFailed, err)
		}
	}
	translation, err := s.Translate(ctx, text)
	if err != nil {
		return "", errs.Wrap(errs.CodeTranslationFailed, err)
	}
	if strings.TrimSpace(translation) == "" {
		return "", errs.New(errs.CodeTranslationEmpty)
	}
	return translation, nil
}

func wantsWarmup(text, sentence string) bool {
	if sentence == "" || sentence == text {
		return false
	}
	return len(strings.Fields(text)) <= contextWarmupMaxTokens
}
