package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

func TestBingTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "secret" {
			t.Error("Missing subscription key header")
		}
		if to := r.URL.Query().Get("to"); to != "zh-Hans" {
			t.Errorf("Unexpected target code %q", to)
		}
		w.Write([]byte(`[{"translations":[{"text":"你好","to":"zh-Hans"}]}]`))
	}))
	defer server.Close()

	b := NewBing("secret")
	b.endpoint = server.URL

	result, err := b.Translate(context.Background(), "hello", "zh-Hans", "en")
	if err != nil {
		t.Fatal(err)
	}
	if result.Translation != "你好" {
		t.Errorf("Expected 你好, got %q", result.Translation)
	}
}

func TestBingEmbeddedErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401000,"message":"The request is not authorized."}}`))
	}))
	defer server.Close()

	b := NewBing("bad-key")
	b.endpoint = server.URL

	_, err := b.Translate(context.Background(), "hello", "zh-Hans", "en")
	if errs.CodeOf(err) != errs.CodeTranslationFailed {
		t.Errorf("Expected TranslationFailed, got %v", err)
	}
}

func TestBingMissingKey(t *testing.T) {
	b := NewBing("")
	_, err := b.Translate(context.Background(), "hello", "zh-Hans", "en")
	if errs.CodeOf(err) != errs.CodeTranslationFailed {
		t.Errorf("Expected TranslationFailed for missing key, got %v", err)
	}
}
