package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// HTTPAPI talks to any OpenAI-compatible chat completions endpoint over
// plain HTTP, such as a local inference server.
type HTTPAPI struct {
	http    *resty.Client
	apiKey  string
	baseURL string
	model   string
}

// NewHTTPAPI creates the HTTP backend for cfg.BaseURL.
func NewHTTPAPI(cfg Config) *HTTPAPI {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com/v1"
	}
	return &HTTPAPI{http: client, apiKey: cfg.APIKey, baseURL: base, model: cfg.Model}
}

// Name implements Provider.
func (h *HTTPAPI) Name() string {
	return "httpapi"
}

// Translate implements Provider.
func (h *HTTPAPI) Translate(ctx context.Context, req Request) (*Response, error) {
	message, err := userMessage(req)
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"model": h.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": message},
		},
		"temperature":     0,
		"response_format": map[string]string{"type": "json_object"},
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	resp, err := h.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&completion).
		Post(h.baseURL + "/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("translation API error: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("translation API error: %s", resp.Status())
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no translation returned")
	}
	return decodeResponse(completion.Choices[0].Message.Content, req.Targets)
}
