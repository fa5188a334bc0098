package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAI talks to the OpenAI chat completions API in JSON mode.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI creates the OpenAI backend. A non-empty BaseURL points the
// client at an alternative endpoint with the same API surface.
func NewOpenAI(cfg Config) *OpenAI {
	var client *openai.Client
	if cfg.BaseURL != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.BaseURL
		client = openai.NewClientWithConfig(clientConfig)
	} else {
		client = openai.NewClient(cfg.APIKey)
	}
	return &OpenAI{client: client, model: cfg.Model, timeout: cfg.Timeout}
}

// Name implements Provider.
func (o *OpenAI) Name() string {
	return "openai"
}

// Translate implements Provider.
func (o *OpenAI) Translate(ctx context.Context, req Request) (*Response, error) {
	message, err := userMessage(req)
	if err != nil {
		return nil, err
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	completion, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no translation returned")
	}
	return decodeResponse(completion.Choices[0].Message.Content, req.Targets)
}
