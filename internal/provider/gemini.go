package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

const geminiModel = "gemini-2.0-flash"

// Gemini translates through the Google Gen AI SDK.
type Gemini struct {
	apiKey string
}

// NewGemini creates the provider. The SDK client is built per call
// because its constructor needs a context.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

func (g *Gemini) ID() string          { return IDGemini }
func (g *Gemini) DisplayName() string { return "Gemini 翻译" }

func (g *Gemini) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	if g.apiKey == "" {
		return nil, errs.Wrapf(errs.CodeTranslationFailed, "Gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, fmt.Errorf("gemini client: %w", err))
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel,
		genai.Text(translationPrompt(text, targetLang, sourceLang)), nil)
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, fmt.Errorf("gemini API error: %w", err))
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return nil, errs.New(errs.CodeTranslationEmpty)
	}
	return &Result{Translation: translation}, nil
}
