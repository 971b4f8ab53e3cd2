package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Translator translates text into a target language identified by an
// ISO 639-1 code. Implementations are never called for the source language;
// the pipeline short-circuits "en" before reaching the adapter.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// OpenAITranslator translates via a chat completion at temperature zero.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator creates an OpenAI-backed translator.
func NewOpenAITranslator(apiKey string) *OpenAITranslator {
	return &OpenAITranslator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// Translate returns the text translated into targetLanguage.
func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translator. Translate the user's text into the language with ISO 639-1 code %q. Reply with the translation only, no commentary.",
					targetLanguage),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &TranslationError{TargetLanguage: targetLanguage, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &TranslationError{TargetLanguage: targetLanguage, Err: fmt.Errorf("no choices returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
