package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const googleBody = `[[["你好","hello",null,null,10]],null,"en"]`

func TestGoogleTranslate(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"sl": q.Get("sl"), "tl": q.Get("tl"), "q": q.Get("q"),
		}
		w.Write([]byte(googleBody))
	}))
	defer server.Close()

	g := NewGoogle()
	g.mirrors = []string{server.URL}

	result, err := g.Translate(context.Background(), "hello", "zh-Hans", "en")
	if err != nil {
		t.Fatal(err)
	}
	if result.Translation != "你好" {
		t.Errorf("Expected 你好, got %q", result.Translation)
	}
	if gotQuery["tl"] != "zh-CN" {
		t.Errorf("zh-Hans should normalize to zh-CN, got %q", gotQuery["tl"])
	}
	if gotQuery["q"] != "hello" {
		t.Errorf("Query text lost: %q", gotQuery["q"])
	}
}

func TestGoogleAutoDetectsMissingSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sl := r.URL.Query().Get("sl"); sl != "auto" {
			t.Errorf("Expected sl=auto, got %q", sl)
		}
		w.Write([]byte(googleBody))
	}))
	defer server.Close()

	g := NewGoogle()
	g.mirrors = []string{server.URL}

	if _, err := g.Translate(context.Background(), "hello", "zh-Hans", ""); err != nil {
		t.Fatal(err)
	}
}

func TestGoogleMirrorFallthrough(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer dead.Close()
	alive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(googleBody))
	}))
	defer alive.Close()

	g := NewGoogle()
	g.mirrors = []string{dead.URL, alive.URL}

	result, err := g.Translate(context.Background(), "hello", "zh-Hans", "en")
	if err != nil {
		t.Fatalf("Second mirror should have rescued the call: %v", err)
	}
	if result.Translation != "你好" {
		t.Errorf("Expected 你好, got %q", result.Translation)
	}
}

func TestGoogleAllMirrorsFail(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer dead.Close()

	g := NewGoogle()
	g.mirrors = []string{dead.URL, dead.URL}

	if _, err := g.Translate(context.Background(), "hello", "zh-Hans", "en"); err == nil {
		t.Error("Expected failure once every mirror is exhausted")
	}
}

func TestGoogleMultiSegmentResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["第一句。","First sentence."],["第二句。","Second sentence."]],null,"en"]`))
	}))
	defer server.Close()

	g := NewGoogle()
	g.mirrors = []string{server.URL}

	result, err := g.Translate(context.Background(), "First sentence. Second sentence.", "zh-Hans", "en")
	if err != nil {
		t.Fatal(err)
	}
	if result.Translation != "第一句。第二句。" {
		t.Errorf("Segments should concatenate, got %q", result.Translation)
	}
}
