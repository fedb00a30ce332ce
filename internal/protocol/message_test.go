package protocol

import (
	"encoding/json"
	"testing"
)

func TestMessageEncodeDecode(t *testing.T) {
	body, err := EncodeMessage(ActionTranslate, &TranslatePayload{
		Text:           "hello",
		TargetLanguage: "zh-Hans",
		Context:        "hello world",
	})
	if err != nil {
		t.Fatalf("EncodeMessage failed: %v", err)
	}

	msg, err := DecodeMessage(body)
	if err != nil {
		t.Fatalf("DecodeMessage failed: %v", err)
	}
	if msg.Action != ActionTranslate {
		t.Errorf("Expected translate action, got %s", msg.Action)
	}

	payload, err := DecodePayload[TranslatePayload](msg)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.Text != "hello" || payload.TargetLanguage != "zh-Hans" {
		t.Errorf("Payload fields lost: %+v", payload)
	}
	if payload.Context != "hello world" {
		t.Errorf("Context lost: %+v", payload)
	}
}

func TestDecodeMessageMalformed(t *testing.T) {
	if _, err := DecodeMessage([]byte("not json")); err == nil {
		t.Error("Expected error for malformed message")
	}
}

func TestDecodePayloadMismatch(t *testing.T) {
	msg := &Message{
		Action:  ActionSaveWord,
		Payload: json.RawMessage(`[1,2,3]`),
	}
	if _, err := DecodePayload[SaveWordPayload](msg); err == nil {
		t.Error("Expected error for payload/action shape mismatch")
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	msg := &Message{Action: ActionPing}
	payload, err := DecodePayload[PingPayload](msg)
	if err != nil {
		t.Fatalf("Empty ping payload should decode: %v", err)
	}
	if payload == nil {
		t.Fatal("Expected zero-value payload")
	}
}

func TestResponseShapes(t *testing.T) {
	cases := []struct {
		resp *Response
		want string
	}{
		{Translated("你好"), `{"success":true,"translation":"你好"}`},
		{VersionResponse("1.2.0"), `{"success":true,"version":"1.2.0"}`},
		{Failure("unknown action"), `{"success":false,"error":"unknown action"}`},
		{OK(), `{"success":true}`},
	}

	for _, c := range cases {
		raw, err := json.Marshal(c.resp)
		if err != nil {
			t.Fatal(err)
		}
		if string(raw) != c.want {
			t.Errorf("Expected %s, got %s", c.want, raw)
		}
	}
}

func TestSaveWordPayloadWireNames(t *testing.T) {
	raw, err := json.Marshal(&SaveWordPayload{
		ID:          "w1",
		Text:        "serendipity",
		Translation: "机缘巧合",
		Source:      "selection",
		SourceURL:   "https://example.com/a",
		Tags:        []string{"reading"},
		CreatedAt:   1700000000000,
	})
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "text", "translation", "source", "sourceURL", "tags", "createdAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Missing wire field %q", key)
		}
	}
}
