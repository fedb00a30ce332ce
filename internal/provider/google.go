package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

// googleMirrors is the ordered endpoint list. The first reachable
// mirror wins; the call fails only once every mirror is exhausted.
var googleMirrors = []string{
	"https://translate.googleapis.com",
	"https://translate.google.com",
	"https://clients5.google.com",
}

// googleLangCodes maps canonical language tags to Google's code space.
// Tags not listed pass through unchanged.
var googleLangCodes = map[string]string{
	"zh-Hans": "zh-CN",
	"zh-Hant": "zh-TW",
	"pt-BR":   "pt",
	"fil":     "tl",
	"he":      "iw",
	"jv":      "jw",
}

// Google calls the public Google web translation endpoint.
type Google struct {
	client  *http.Client
	mirrors []string
}

// NewGoogle creates the provider with the static mirror list.
func NewGoogle() *Google {
	return &Google{
		client:  &http.Client{Timeout: endpointTimeout},
		mirrors: googleMirrors,
	}
}

func (g *Google) ID() string          { return IDGoogle }
func (g *Google) DisplayName() string { return "Google 翻译" }

// Translate fans out across the mirrors in order.
func (g *Google) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	source := googleCode(sourceLang)
	if source == "" {
		source = "auto"
	}
	target := googleCode(targetLang)

	var lastErr error
	for _, mirror := range g.mirrors {
		result, err := g.translateVia(ctx, mirror, text, target, source)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, errs.Wrap(errs.CodeTranslationFailed,
		fmt.Errorf("all google mirrors failed: %w", lastErr))
}

func (g *Google) translateVia(ctx context.Context, mirror, text, target, source string) (*Result, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	reqURL := mirror + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("google returned status %d: %s", resp.StatusCode, body)
	}

	// Response shape: [[["translated","original",...],...],...]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return nil, fmt.Errorf("unexpected response shape: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}
	translation := strings.TrimSpace(sb.String())
	if translation == "" {
		return nil, fmt.Errorf("no translation in response")
	}
	return &Result{Translation: translation}, nil
}

func googleCode(tag string) string {
	if code, ok := googleLangCodes[tag]; ok {
		return code
	}
	return tag
}
