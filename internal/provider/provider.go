package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/tetraglot/internal/language"
)

// UnknownLanguage is the detected-language value the model returns when
// it cannot identify the source.
const UnknownLanguage = "unknown"

const systemPrompt = "You are a translation engine for ru, en, de, hy. " +
	"Return only strict JSON with keys detected_language and translations, " +
	"plus the optional keys verb_past_forms_line, german_noun_article_line " +
	"and german_verb_governance. Do not include markdown. Do not include " +
	"other keys. detected_language must be one of ru,en,de,hy,unknown. " +
	"Translate directly without stylistic rewriting. " +
	"For single words, include up to 3 common variants only when genuinely common. " +
	"If the source text is a verb, translate every target to its infinitive " +
	"form and set verb_past_forms_line to the key past-tense forms of the " +
	"source and targets. If the German translation is a noun, set " +
	"german_noun_article_line to its definite article and gender. If the " +
	"German translation is a verb governing a preposition, set " +
	"german_verb_governance to the preposition and its case."

// Request describes one translation call.
type Request struct {
	Text             string
	Targets          []string
	ForcedSource     string   // empty for automatic detection
	AllowedLanguages []string // detection scope, nil for all supported
}

// Annotations are the optional linguistic extras the model returns
// alongside the translations.
type Annotations struct {
	PastForms            string
	GermanNounArticle    string
	GermanVerbGovernance string
}

// Response is the normalized model answer: one string per requested
// target plus the detected source language.
type Response struct {
	DetectedLanguage string
	Translations     map[string]string
	Annotations      Annotations
}

// Provider is one translation model backend.
type Provider interface {
	Name() string
	Translate(ctx context.Context, req Request) (*Response, error)
}

// Config carries the connection settings shared by all backends.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type payload struct {
	InputText        string       `json:"input_text"`
	AllowedLanguages []string     `json:"allowed_languages"`
	RequestedTargets []string     `json:"requested_targets"`
	ForcedSource     *string      `json:"forced_source"`
	Requirements     requirements `json:"requirements"`
}

type requirements struct {
	TranslationStyle           string `json:"translation_style"`
	MaxVariantsForSingleWords  int    `json:"max_variants_for_single_words"`
	EmptyTranslationForMissing bool   `json:"empty_translation_for_missing"`
}

func buildPayload(req Request) payload {
	scope := req.AllowedLanguages
	if len(scope) == 0 {
		scope = language.Supported()
	}
	var forced *string
	if req.ForcedSource != "" {
		forced = &req.ForcedSource
	}
	return payload{
		InputText:        req.Text,
		AllowedLanguages: scope,
		RequestedTargets: req.Targets,
		ForcedSource:     forced,
		Requirements: requirements{
			TranslationStyle:          "direct",
			MaxVariantsForSingleWords: 3,
		},
	}
}

func userMessage(req Request) (string, error) {
	body, err := json.Marshal(buildPayload(req))
	if err != nil {
		return "", fmt.Errorf("failed to encode request payload: %w", err)
	}
	return "Return valid JSON for this request: " + string(body), nil
}

type wireResponse struct {
	DetectedLanguage     string                     `json:"detected_language"`
	Translations         map[string]json.RawMessage `json:"translations"`
	PastForms            string                     `json:"verb_past_forms_line"`
	GermanNounArticle    string                     `json:"german_noun_article_line"`
	GermanVerbGovernance string                     `json:"german_verb_governance"`
}

// decodeResponse validates the raw model output and keeps only the
// requested targets. The model may answer with a single string or a list
// of candidates per target; lists are joined into one comma-separated
// string.
func decodeResponse(raw string, targets []string) (*Response, error) {
	var wire wireResponse
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	if wire.DetectedLanguage != UnknownLanguage && !language.IsSupported(wire.DetectedLanguage) {
		return nil, fmt.Errorf("unexpected detected language %q", wire.DetectedLanguage)
	}

	translations := make(map[string]string)
	for _, target := range targets {
		value := normalizeValue(wire.Translations[target])
		if value != "" {
			translations[target] = value
		}
	}
	return &Response{
		DetectedLanguage: wire.DetectedLanguage,
		Translations:     translations,
		Annotations: Annotations{
			PastForms:            strings.TrimSpace(wire.PastForms),
			GermanNounArticle:    strings.TrimSpace(wire.GermanNounArticle),
			GermanVerbGovernance: strings.TrimSpace(wire.GermanVerbGovernance),
		},
	}, nil
}

func normalizeValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if text := strings.TrimSpace(fmt.Sprint(item)); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
