package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/1psychoQAQ/my-translator/internal/errs"
)

// languageNames renders canonical tags as names the model reads more
// reliably than raw tags.
var languageNames = map[string]string{
	"zh-Hans": "Simplified Chinese",
	"zh-Hant": "Traditional Chinese",
	"en":      "English",
	"ja":      "Japanese",
	"ko":      "Korean",
	"fr":      "French",
	"de":      "German",
	"es":      "Spanish",
	"ru":      "Russian",
	"pt-BR":   "Brazilian Portuguese",
}

// OpenAI translates through chat completions.
type OpenAI struct {
	apiKey string
	client *openai.Client
}

// NewOpenAI creates the provider.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

func (o *OpenAI) ID() string          { return IDOpenAI }
func (o *OpenAI) DisplayName() string { return "OpenAI 翻译" }

func (o *OpenAI) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Result, error) {
	if o.apiKey == "" {
		return nil, errs.Wrapf(errs.CodeTranslationFailed, "OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(text, targetLang, sourceLang),
			},
		},
		MaxTokens:   1000,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, errs.Wrap(errs.CodeTranslationFailed, fmt.Errorf("OpenAI API error: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, errs.Wrapf(errs.CodeTranslationFailed, "no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return nil, errs.New(errs.CodeTranslationEmpty)
	}
	return &Result{Translation: translation}, nil
}

func translationPrompt(text, targetLang, sourceLang string) string {
	target := languageName(targetLang)
	if sourceLang == "" {
		return fmt.Sprintf("Translate the following text to %s. Respond with only the translation, nothing else.\n\n%s", target, text)
	}
	return fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		languageName(sourceLang), target, text)
}

func languageName(tag string) string {
	if name, ok := languageNames[tag]; ok {
		return name
	}
	return tag
}
