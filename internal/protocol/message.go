package protocol

import (
	"encoding/json"
	"fmt"
)

// Action tags the payload variant of a Message.
type Action string

const (
	ActionTranslate Action = "translate"
	ActionSaveWord  Action = "saveWord"
	ActionSpeak     Action = "speak"
	ActionPing      Action = "ping"
)

// Message is the envelope sent from the client to the helper process.
// The action tag is read first; the payload is decoded by an explicit
// switch on it, never by trial decoding.
type Message struct {
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is the envelope sent back for every message. Exactly one of
// Translation/Version/Error is meaningful depending on action and
// Success.
type Response struct {
	Success     bool   `json:"success"`
	Translation string `json:"translation,omitempty"`
	Version     string `json:"version,omitempty"`
	Error       string `json:"error,omitempty"`
}

// TranslatePayload asks the helper for a translation. Context, when
// present, carries the sentence surrounding a short phrase.
type TranslatePayload struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage"`
	Context        string `json:"context,omitempty"`
}

// SaveWordPayload stores one word-list entry.
type SaveWordPayload struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Translation string   `json:"translation"`
	Source      string   `json:"source"`
	SourceURL   string   `json:"sourceURL,omitempty"`
	Sentence    string   `json:"sentence,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"createdAt"` // epoch millis
}

// SpeakPayload asks the helper to pronounce text aloud.
type SpeakPayload struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// PingPayload is empty; ping is the liveness probe.
type PingPayload struct{}

// EncodeMessage marshals a message with its payload.
func EncodeMessage(action Action, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Action: action, Payload: raw})
}

// DecodeMessage parses a frame body into a Message. The payload stays
// raw until the action-specific decode below.
func DecodeMessage(body []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	return &msg, nil
}

// DecodePayload unmarshals the raw payload into the variant matching
// the message's action. A mismatch is reported, not guessed around.
func DecodePayload[T any](msg *Message) (*T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", msg.Action, err)
	}
	return &payload, nil
}

// OK builds a bare success response.
func OK() *Response { return &Response{Success: true} }

// Translated builds a success response carrying a translation.
func Translated(text string) *Response {
	return &Response{Success: true, Translation: text}
}

// VersionResponse builds the ping reply.
func VersionResponse(version string) *Response {
	return &Response{Success: true, Version: version}
}

// Failure builds a failure response. Business failures always travel as
// responses so a well-formed peer can never take down the connection.
func Failure(reason string) *Response {
	return &Response{Success: false, Error: reason}
}
