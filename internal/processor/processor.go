package processor

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tetraglot/internal/batch"
	"codeberg.org/snonux/tetraglot/internal/cache"
	"codeberg.org/snonux/tetraglot/internal/chat"
	"codeberg.org/snonux/tetraglot/internal/cli"
	"codeberg.org/snonux/tetraglot/internal/history"
	"codeberg.org/snonux/tetraglot/internal/language"
	"codeberg.org/snonux/tetraglot/internal/logging"
	"codeberg.org/snonux/tetraglot/internal/metrics"
	"codeberg.org/snonux/tetraglot/internal/parser"
	"codeberg.org/snonux/tetraglot/internal/provider"
	"codeberg.org/snonux/tetraglot/internal/reply"
	"codeberg.org/snonux/tetraglot/internal/session"
	"codeberg.org/snonux/tetraglot/internal/translator"
)

// localUser identifies the single user of a CLI session. The session and
// history stores are keyed by user so a multi-user transport can reuse them.
const localUser int64 = 0

// Processor holds the assembled translation pipeline
type Processor struct {
	flags      *cli.Flags
	logger     *logrus.Logger
	store      *cache.Store
	translator *translator.Service
	sessions   session.Store
	history    *history.History
}

// NewProcessor builds the full pipeline from flags and configuration
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	applyConfigFile(flags)

	logger, err := logging.Setup(flags.LogLevel, flags.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	apiKey := cli.GetOpenAIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .tetraglot.yaml")
	}

	backend, err := newBackend(flags, apiKey)
	if err != nil {
		return nil, err
	}

	sessions := session.NewMemoryStore()
	if flags.LangPair != "" {
		src, dst, ok := language.NormalizePair(flags.LangPair)
		if !ok {
			return nil, fmt.Errorf("invalid language pair: %s", flags.LangPair)
		}
		pair, _ := language.CanonicalPair(src, dst)
		sessions.SetActivePair(localUser, pair)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	policy := provider.RetryPolicy{MaxRetries: flags.MaxRetries, Backoff: provider.DefaultBackoff}
	retrying := provider.NewRetrying(backend, policy, logger, collector)

	store, err := cache.Open(flags.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation cache: %w", err)
	}

	if flags.MetricsListen != "" {
		serveMetrics(flags.MetricsListen, registry, logger)
	}

	return &Processor{
		flags:      flags,
		logger:     logger,
		store:      store,
		translator: translator.NewService(retrying, store, logger, collector),
		sessions:   sessions,
		history:    history.New(flags.HistoryEnabled, flags.HistoryLimit),
	}, nil
}

// Close releases the translation cache database
func (p *Processor) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// ProcessBatch translates every message from the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	messages, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Track statistics
	translatedCount := 0
	cachedCount := 0
	rejectedCount := 0
	errorCount := 0

	for i, message := range messages {
		fmt.Printf("\nTranslating %d/%d: %s\n", i+1, len(messages), message)

		intent, err := parser.Parse(message, p.activePair())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping '%s': %v\n", message, err)
			rejectedCount++
			continue
		}

		result, err := p.translator.Translate(ctx, intent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error translating '%s': %v\n", message, err)
			errorCount++
			// Continue with next message
			continue
		}

		fmt.Println(reply.FormatResult(result, intent.Mode))
		translatedCount++
		if result.FromCache {
			cachedCount++
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Translation Summary ===\n")
	fmt.Printf("Total messages: %d\n", len(messages))
	fmt.Printf("Translated: %d\n", translatedCount)
	fmt.Printf("Served from cache: %d\n", cachedCount)
	if rejectedCount > 0 {
		fmt.Printf("Rejected: %d\n", rejectedCount)
	}
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=================================\n")

	return nil
}

// ProcessSingleMessage translates one message and prints the result
func (p *Processor) ProcessSingleMessage(ctx context.Context, message string) error {
	intent, err := parser.Parse(message, p.activePair())
	if err != nil {
		return fmt.Errorf("cannot translate '%s': %w", message, err)
	}

	result, err := p.translator.Translate(ctx, intent)
	if err != nil {
		return fmt.Errorf("failed to translate '%s': %w", message, err)
	}

	fmt.Println(reply.FormatResult(result, intent.Mode))
	return nil
}

// RunChat starts the interactive chat loop on stdin and stdout
func (p *Processor) RunChat(ctx context.Context) error {
	loop := chat.New(chat.Config{
		Translator:   p.translator,
		Sessions:     p.sessions,
		History:      p.history,
		Logger:       p.logger,
		HistoryLimit: p.flags.HistoryLimit,
		UserID:       localUser,
	})
	return loop.Run(ctx)
}

func (p *Processor) activePair() *language.Pair {
	if pair, ok := p.sessions.ActivePair(localUser); ok {
		return &pair
	}
	return nil
}

// applyConfigFile fills flags still at their defaults from the config file.
// Explicit flags win over the config file, the config file wins over
// built-in defaults.
func applyConfigFile(flags *cli.Flags) {
	defaults := cli.NewFlags()

	if flags.ProviderKind == defaults.ProviderKind && viper.IsSet("provider.kind") {
		flags.ProviderKind = viper.GetString("provider.kind")
	}
	if flags.Model == defaults.Model && viper.IsSet("provider.model") {
		flags.Model = viper.GetString("provider.model")
	}
	if flags.BaseURL == "" && viper.IsSet("provider.base_url") {
		flags.BaseURL = viper.GetString("provider.base_url")
	}
	if flags.Timeout == defaults.Timeout && viper.IsSet("provider.timeout") {
		flags.Timeout = viper.GetDuration("provider.timeout")
	}
	if flags.MaxRetries == defaults.MaxRetries && viper.IsSet("provider.max_retries") {
		flags.MaxRetries = viper.GetInt("provider.max_retries")
	}
	if flags.CachePath == cli.DefaultCachePath() && viper.IsSet("cache.path") {
		flags.CachePath = viper.GetString("cache.path")
	}
	if flags.HistoryLimit == defaults.HistoryLimit && viper.IsSet("history.limit") {
		flags.HistoryLimit = viper.GetInt("history.limit")
	}
	if flags.HistoryEnabled == defaults.HistoryEnabled && viper.IsSet("history.enabled") {
		flags.HistoryEnabled = viper.GetBool("history.enabled")
	}
	if flags.LogLevel == defaults.LogLevel && viper.IsSet("log.level") {
		flags.LogLevel = viper.GetString("log.level")
	}
	if flags.LogFile == "" && viper.IsSet("log.file") {
		flags.LogFile = viper.GetString("log.file")
	}
	if flags.MetricsListen == "" && viper.IsSet("metrics.listen") {
		flags.MetricsListen = viper.GetString("metrics.listen")
	}
}

func newBackend(flags *cli.Flags, apiKey string) (provider.Provider, error) {
	cfg := provider.Config{
		APIKey:  apiKey,
		Model:   flags.Model,
		BaseURL: flags.BaseURL,
		Timeout: flags.Timeout,
	}

	switch flags.ProviderKind {
	case "openai":
		return provider.NewOpenAI(cfg), nil
	case "httpapi":
		return provider.NewHTTPAPI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider kind: %s", flags.ProviderKind)
	}
}

// serveMetrics exposes the metrics registry on addr in the background
func serveMetrics(addr string, registry *prometheus.Registry, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		logger.WithField("addr", addr).Info("serving metrics")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.WithError(err).Error("metrics listener stopped")
		}
	}()
}
