package translator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/tetraglot/internal"
	"codeberg.org/snonux/tetraglot/internal/cache"
	"codeberg.org/snonux/tetraglot/internal/language"
	"codeberg.org/snonux/tetraglot/internal/metrics"
	"codeberg.org/snonux/tetraglot/internal/parser"
	"codeberg.org/snonux/tetraglot/internal/provider"
)

var (
	// ErrProviderFailure reports that the model could not produce a
	// usable answer. It carries no internal detail.
	ErrProviderFailure = errors.New("translation failed")

	// ErrUnknownLanguage reports that the source language could not be
	// detected. The caller should ask the user to name it.
	ErrUnknownLanguage = errors.New("source language not detected")
)

// Result is one finished translation.
type Result struct {
	SourceLanguage string
	Translations   map[string]string
	Annotations    provider.Annotations
	FromCache      bool
}

// Cache is the durable store consulted before any provider call.
type Cache interface {
	Get(ctx context.Context, key cache.Key) (*cache.Entry, error)
	Put(ctx context.Context, key cache.Key, entry *cache.Entry) error
}

// Service resolves parsed intents into translations.
type Service struct {
	provider  provider.Provider
	cache     Cache
	logger    *logrus.Logger
	collector *metrics.Collector
}

// NewService creates the orchestrator. The cache and collector may be
// nil; the service then translates without caching or metrics.
func NewService(p provider.Provider, c Cache, logger *logrus.Logger, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{provider: p, cache: c, logger: logger, collector: collector}
}

// Translate resolves intent into a finished translation. It returns
// ErrUnknownLanguage when the source language cannot be detected and
// ErrProviderFailure when the model gives no usable answer.
func (s *Service) Translate(ctx context.Context, intent parser.Intent) (*Result, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"request_id":  internal.GenerateRequestID(),
		"mode":        string(intent.Mode),
		"text_length": len([]rune(intent.Text)),
	})
	log.Info("Translation accepted")

	var (
		result *Result
		err    error
	)
	switch intent.Mode {
	case parser.ModeExplicitPair:
		result, err = s.explicitPair(ctx, log, intent.Text, intent.Source, intent.Target)
	case parser.ModeForcedSource:
		result, err = s.forcedSource(ctx, log, intent.Text, intent.Source)
	case parser.ModeDefaultPair:
		result, err = s.defaultPair(ctx, log, intent.Text, intent.Source, intent.Target)
	default:
		result, err = s.autoAll(ctx, log, intent.Text)
	}

	s.collector.RecordTranslation(string(intent.Mode), time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"source":    result.SourceLanguage,
		"targets":   len(result.Translations),
		"cache_hit": result.FromCache,
	}).Info("Translation finished")
	return result, nil
}

// TranslateWithForcedSource answers a language clarification: the user
// has named the source language for text whose language could not be
// detected.
func (s *Service) TranslateWithForcedSource(ctx context.Context, text, source string) (*Result, error) {
	if !language.IsSupported(source) {
		return nil, ErrProviderFailure
	}
	log := s.logger.WithFields(logrus.Fields{
		"request_id": internal.GenerateRequestID(),
		"mode":       "clarified_source",
	})
	return s.forcedSource(ctx, log, text, source)
}

// explicitPair translates text from src into dst only.
func (s *Service) explicitPair(ctx context.Context, log *logrus.Entry, text, src, dst string) (*Result, error) {
	key := cache.NewKey(src, []string{dst}, text)
	if entry := s.lookup(ctx, log, key); entry != nil {
		return resultFromEntry(entry), nil
	}

	resp, err := s.callProvider(ctx, log, provider.Request{
		Text:             text,
		Targets:          []string{dst},
		ForcedSource:     src,
		AllowedLanguages: []string{src, dst},
	})
	if err != nil {
		return nil, err
	}

	translation := strings.TrimSpace(resp.Translations[dst])
	if translation == "" {
		log.Warn("Provider returned no translation for explicit pair")
		return nil, ErrProviderFailure
	}

	result := &Result{
		SourceLanguage: src,
		Translations:   map[string]string{dst: translation},
		Annotations:    resp.Annotations,
	}
	s.store(ctx, log, key, result)
	return result, nil
}

// forcedSource translates text from a fixed source into the other three
// languages.
func (s *Service) forcedSource(ctx context.Context, log *logrus.Entry, text, source string) (*Result, error) {
	targets := language.Others(source)
	key := cache.NewKey(source, targets, text)
	if entry := s.lookup(ctx, log, key); entry != nil {
		return resultFromEntry(entry), nil
	}

	resp, err := s.callProvider(ctx, log, provider.Request{
		Text:         text,
		Targets:      targets,
		ForcedSource: source,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Translations) == 0 {
		log.Warn("Provider returned no translations for forced source")
		return nil, ErrProviderFailure
	}

	result := &Result{
		SourceLanguage: source,
		Translations:   resp.Translations,
		Annotations:    resp.Annotations,
	}
	s.store(ctx, log, key, result)
	return result, nil
}

// defaultPair translates text within the user's active pair. The source
// is detected, constrained to the pair's two languages.
func (s *Service) defaultPair(ctx context.Context, log *logrus.Entry, text, first, second string) (*Result, error) {
	pair := []string{first, second}
	key := cache.NewKey(cache.AutoSource, pair, text)
	if entry := s.lookup(ctx, log, key); entry != nil {
		return resultFromEntry(entry), nil
	}

	resp, err := s.callProvider(ctx, log, provider.Request{
		Text:             text,
		Targets:          pair,
		AllowedLanguages: pair,
	})
	if err != nil {
		return nil, err
	}

	detected := resp.DetectedLanguage
	if detected != first && detected != second {
		log.WithField("detected", detected).Info("Detected language outside the active pair")
		return nil, ErrUnknownLanguage
	}
	target := first
	if detected == first {
		target = second
	}

	annotations := resp.Annotations
	translation := strings.TrimSpace(resp.Translations[target])
	if translation == "" {
		refill, err := s.callProvider(ctx, log, provider.Request{
			Text:             text,
			Targets:          []string{target},
			ForcedSource:     detected,
			AllowedLanguages: pair,
		})
		if err != nil {
			return nil, err
		}
		translation = strings.TrimSpace(refill.Translations[target])
		annotations = mergeAnnotations(annotations, refill.Annotations)
	}
	if translation == "" {
		log.Warn("Provider returned no translation for active pair")
		return nil, ErrProviderFailure
	}

	result := &Result{
		SourceLanguage: detected,
		Translations:   map[string]string{target: translation},
		Annotations:    annotations,
	}
	s.store(ctx, log, key, result)
	return result, nil
}

// autoAll detects the source language and translates into the other
// three.
func (s *Service) autoAll(ctx context.Context, log *logrus.Entry, text string) (*Result, error) {
	key := cache.NewKey(cache.AutoSource, language.Supported(), text)
	if entry := s.lookup(ctx, log, key); entry != nil {
		return resultFromEntry(entry), nil
	}

	resp, err := s.callProvider(ctx, log, provider.Request{
		Text:    text,
		Targets: language.Supported(),
	})
	if err != nil {
		return nil, err
	}

	detected := resp.DetectedLanguage
	if detected == provider.UnknownLanguage || !language.IsSupported(detected) {
		log.Info("Source language not detected")
		return nil, ErrUnknownLanguage
	}

	targets := language.Others(detected)
	translations := make(map[string]string, len(targets))
	var missing []string
	for _, target := range targets {
		if value := strings.TrimSpace(resp.Translations[target]); value != "" {
			translations[target] = value
		} else {
			missing = append(missing, target)
		}
	}

	annotations := resp.Annotations
	if len(missing) > 0 {
		refill, err := s.callProvider(ctx, log, provider.Request{
			Text:         text,
			Targets:      missing,
			ForcedSource: detected,
		})
		if err != nil {
			return nil, err
		}
		for _, target := range missing {
			if value := strings.TrimSpace(refill.Translations[target]); value != "" {
				translations[target] = value
			}
		}
		annotations = mergeAnnotations(annotations, refill.Annotations)
	}
	if len(translations) == 0 {
		log.Warn("Provider returned no translations")
		return nil, ErrProviderFailure
	}

	result := &Result{
		SourceLanguage: detected,
		Translations:   translations,
		Annotations:    annotations,
	}
	s.store(ctx, log, key, result)
	return result, nil
}

func (s *Service) callProvider(ctx context.Context, log *logrus.Entry, req provider.Request) (*provider.Response, error) {
	resp, err := s.provider.Translate(ctx, req)
	if err != nil {
		log.WithError(err).Error("Provider call failed")
		return nil, ErrProviderFailure
	}
	return resp, nil
}

func (s *Service) lookup(ctx context.Context, log *logrus.Entry, key cache.Key) *cache.Entry {
	if s.cache == nil {
		return nil
	}
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Cache lookup failed")
		return nil
	}
	if entry == nil {
		s.collector.RecordCacheMiss()
		return nil
	}
	s.collector.RecordCacheHit()
	return entry
}

func (s *Service) store(ctx context.Context, log *logrus.Entry, key cache.Key, result *Result) {
	if s.cache == nil {
		return
	}
	entry := &cache.Entry{
		Translations:         result.Translations,
		DetectedSource:       result.SourceLanguage,
		PastForms:            result.Annotations.PastForms,
		GermanNounArticle:    result.Annotations.GermanNounArticle,
		GermanVerbGovernance: result.Annotations.GermanVerbGovernance,
	}
	if err := s.cache.Put(ctx, key, entry); err != nil {
		log.WithError(err).Warn("Cache write failed")
	}
}

func resultFromEntry(entry *cache.Entry) *Result {
	return &Result{
		SourceLanguage: entry.DetectedSource,
		Translations:   entry.Translations,
		Annotations: provider.Annotations{
			PastForms:            entry.PastForms,
			GermanNounArticle:    entry.GermanNounArticle,
			GermanVerbGovernance: entry.GermanVerbGovernance,
		},
		FromCache: true,
	}
}

// mergeAnnotations fills empty fields of base from the refill response.
func mergeAnnotations(base, refill provider.Annotations) provider.Annotations {
	if base.PastForms == "" {
		base.PastForms = refill.PastForms
	}
	if base.GermanNounArticle == "" {
		base.GermanNounArticle = refill.GermanNounArticle
	}
	if base.GermanVerbGovernance == "" {
		base.GermanVerbGovernance = refill.GermanVerbGovernance
	}
	return base
}
