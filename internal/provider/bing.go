package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

const bingEndpoint = "https://api.cognitive.microsofttranslator.com/translate"

// bingLangCodes maps canonical language tags to Microsoft's code space.
var bingLangCodes = map[string]string{
	"zh-Hans": "zh-Hans",
	"zh-Hant": "zh-Hant",
	"pt-BR":   "pt",
	"fil":     "fil",
	"he":      "he",
	"nb":      "nb",
}

// Bing calls the Microsoft Translator text API.
type Bing struct {
	apiKey   string
	client   *http.Client
	endpoint string
}

// NewBing creates the provider. An empty key still constructs; the
// first call then fails like any other provider error so the fallback
// chain can take over.
func NewBing(apiKey string) *Bing {
	return &Bing{
		apiKey:   apiKey,
		client:   &http.Client{Timeout: endpointTimeout},
		endpoint: bingEndpoint,
	}
}

func (b *Bing) ID() string          { return IDBing }
func (b *Bing) DisplayName() string { return "微软翻译" }

type bingRequestItem struct {
	Text string `json:"Text"`
}

type bingResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

type bingError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (b *Bing) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	if b.apiKey == "" {
		return nil, errs.Wrapf(errs.CodeTranslationFailed, "microsoft translator key not configured")
	}

	params := url.Values{}
	params.Set("api-version", "3.0")
	params.Set("to", bingCode(targetLang))
	if sourceLang != "" {
		params.Set("from", bingCode(sourceLang))
	}

	body, err := json.Marshal([]bingRequestItem{{Text: text}})
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.endpoint+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		// The API embeds a failure code in the body even on some 200s;
		// surface whichever detail is available.
		var apiErr bingError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.Wrapf(errs.CodeTranslationFailed,
				"microsoft error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return nil, errs.Wrapf(errs.CodeTranslationFailed,
			"microsoft returned status %d", resp.StatusCode)
	}

	var items []bingResponseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		var apiErr bingError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.Wrapf(errs.CodeTranslationFailed,
				"microsoft error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return nil, errs.Wrap(errs.CodeTranslationFailed, fmt.Errorf("failed to decode response: %w", err))
	}
	if len(items) == 0 || len(items[0].Translations) == 0 {
		return nil, errs.Wrapf(errs.CodeTranslationFailed, "no translation in response")
	}

	translation := strings.TrimSpace(items[0].Translations[0].Text)
	if translation == "" {
		return nil, errs.New(errs.CodeTranslationEmpty)
	}
	return &Result{Translation: translation}, nil
}

func bingCode(tag string) string {
	if code, ok := bingLangCodes[tag]; ok {
		return code
	}
	return tag
}
