// Package host implements the helper-process side of the protocol: the
// message router that reads frames, dispatches to action handlers and
// writes response frames back, strictly one message at a time.
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/1psychoQAQ/my-translator/internal"
	"github.com/1psychoQAQ/my-translator/internal/protocol"
)

// Translator is the awaitable translation capability, implemented by
// the engine session bridge.
type Translator interface {
	TranslateWithContext(ctx context.Context, text, sourceLanguage, targetLanguage, sentence string) (string, error)
}

// WordStore persists word-list entries. The shipped implementation is
// in-memory; persistence itself belongs to an external collaborator.
type WordStore interface {
	Save(entry *protocol.SaveWordPayload) error
}

// Speaker pronounces text aloud. Optional; a helper without one
// answers speak requests with a failure response.
type Speaker interface {
	Speak(ctx context.Context, text, language string) error
}

// Router decodes frames into messages, dispatches them and encodes the
// results. Processing is strictly sequential: one handler runs to
// completion before the next frame is read, so responses always come
// back in request order and the engine bridge's single pending slot is
// never contended.
type Router struct {
	translator Translator
	store      WordStore
	speaker    Speaker
	logger     *zap.Logger
}

// NewRouter wires the router's collaborators. logger must not be nil;
// speaker and store may be.
func NewRouter(translator Translator, store WordStore, speaker Speaker, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{translator: translator, store: store, speaker: speaker, logger: logger}
}

// Serve runs the message loop until the peer closes the stream (clean
// return) or a protocol violation forces disconnection.
func (r *Router) Serve(in io.Reader, out io.Writer) error {
	for {
		frame, err := protocol.ReadFrame(in)
		if errors.Is(err, io.EOF) {
			r.logger.Info("peer closed connection")
			return nil
		}
		if err != nil {
			r.logger.Warn("terminating connection", zap.Error(err))
			return err
		}

		resp := r.Handle(frame)
		body, err := json.Marshal(resp)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		if err := protocol.WriteFrame(out, body); err != nil {
			r.logger.Warn("write failed", zap.Error(err))
			return err
		}
	}
}

// Handle processes one decoded frame body into a response. Business
// failures always come back as failure responses, never as transport
// faults, so a well-formed peer cannot take the connection down.
func (r *Router) Handle(frame []byte) *protocol.Response {
	start := time.Now()
	msg, err := protocol.DecodeMessage(frame)
	if err != nil {
		r.logger.Warn("malformed message", zap.Error(err))
		return protocol.Failure("malformed message")
	}

	resp := r.dispatch(msg)
	r.logger.Debug("handled message",
		zap.String("action", string(msg.Action)),
		zap.Bool("success", resp.Success),
		zap.Duration("took", time.Since(start)))
	return resp
}

func (r *Router) dispatch(msg *protocol.Message) *protocol.Response {
	switch msg.Action {
	case protocol.ActionTranslate:
		return r.handleTranslate(msg)
	case protocol.ActionSaveWord:
		return r.handleSaveWord(msg)
	case protocol.ActionSpeak:
		return r.handleSpeak(msg)
	case protocol.ActionPing:
		return protocol.VersionResponse(internal.Version)
	default:
		return protocol.Failure(fmt.Sprintf("unknown action: %s", msg.Action))
	}
}

func (r *Router) handleTranslate(msg *protocol.Message) *protocol.Response {
	payload, err := protocol.DecodePayload[protocol.TranslatePayload](msg)
	if err != nil {
		return protocol.Failure(err.Error())
	}
	if strings.TrimSpace(payload.Text) == "" {
		return protocol.Failure("nothing to translate")
	}
	if payload.TargetLanguage == "" {
		return protocol.Failure("targetLanguage is required")
	}

	translation, err := r.translator.TranslateWithContext(context.Background(),
		payload.Text, payload.SourceLanguage, payload.TargetLanguage, payload.Context)
	if err != nil {
		r.logger.Warn("translate failed",
			zap.String("target", payload.TargetLanguage), zap.Error(err))
		return protocol.Failure(err.Error())
	}
	return protocol.Translated(translation)
}

func (r *Router) handleSaveWord(msg *protocol.Message) *protocol.Response {
	if r.store == nil {
		return protocol.Failure("word store not available")
	}
	payload, err := protocol.DecodePayload[protocol.SaveWordPayload](msg)
	if err != nil {
		return protocol.Failure(err.Error())
	}
	if strings.TrimSpace(payload.Text) == "" {
		return protocol.Failure("text is required")
	}
	if payload.ID == "" {
		payload.ID = internal.GenerateEntryID(payload.Text)
	}

	if err := r.store.Save(payload); err != nil {
		r.logger.Warn("save failed", zap.String("id", payload.ID), zap.Error(err))
		return protocol.Failure(err.Error())
	}
	return protocol.OK()
}

func (r *Router) handleSpeak(msg *protocol.Message) *protocol.Response {
	if r.speaker == nil {
		return protocol.Failure("speech not available")
	}
	payload, err := protocol.DecodePayload[protocol.SpeakPayload](msg)
	if err != nil {
		return protocol.Failure(err.Error())
	}
	if strings.TrimSpace(payload.Text) == "" {
		return protocol.Failure("nothing to speak")
	}

	if err := r.speaker.Speak(context.Background(), payload.Text, payload.Language); err != nil {
		r.logger.Warn("speak failed", zap.Error(err))
		return protocol.Failure(err.Error())
	}
	return protocol.OK()
}
