package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels prints the chat models usable for translation
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .tetraglot.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("Available translation models:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}

// isChatModel reports whether a model ID names a chat completion model.
// Audio, embedding, and image models cannot translate text.
func isChatModel(modelID string) bool {
	for _, excluded := range []string{"tts", "audio", "whisper", "embedding", "dall-e", "image", "moderation"} {
		if strings.Contains(modelID, excluded) {
			return false
		}
	}
	return strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") || strings.HasPrefix(modelID, "o")
}
