package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEngine implements the event-driven Engine contract on top of
// OpenAI chat completions, standing in for the platform translation
// engine when the helper runs somewhere without one.
type OpenAIEngine struct {
	apiKey string
	client *openai.Client
	ready  func(Session, error)
}

// NewOpenAIEngine creates an engine instance.
func NewOpenAIEngine(apiKey string) *OpenAIEngine {
	return &OpenAIEngine{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// OnSessionReady registers the session-ready callback.
func (e *OpenAIEngine) OnSessionReady(fn func(Session, error)) {
	e.ready = fn
}

// Configure asynchronously establishes a session for the pair and
// reports it through the registered callback.
func (e *OpenAIEngine) Configure(sourceLanguage, targetLanguage string) {
	go func() {
		if e.apiKey == "" {
			e.ready(nil, fmt.Errorf("OpenAI API key not found"))
			return
		}
		e.ready(&openAISession{
			client:         e.client,
			sourceLanguage: sourceLanguage,
			targetLanguage: targetLanguage,
		}, nil)
	}()
}

type openAISession struct {
	client         *openai.Client
	sourceLanguage string
	targetLanguage string
}

func (s *openAISession) Translate(ctx context.Context, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: s.prompt(text),
			},
		},
		MaxTokens:   1000,
		Temperature: 0.3,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *openAISession) prompt(text string) string {
	if s.sourceLanguage == "" {
		return fmt.Sprintf("Translate the following text to %s. Respond with only the translation, nothing else.\n\n%s",
			s.targetLanguage, text)
	}
	return fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		s.sourceLanguage, s.targetLanguage, text)
}
