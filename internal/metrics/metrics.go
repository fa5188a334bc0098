// Package metrics exposes Prometheus counters for translation activity:
// cache effectiveness, provider calls and retries, and per-mode
// translation outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records translation activity. A nil Collector is valid and
// records nothing, so callers never need to guard their calls.
type Collector struct {
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	providerRequests    *prometheus.CounterVec
	providerRetries     prometheus.Counter
	translations        *prometheus.CounterVec
	translationDuration *prometheus.HistogramVec
}

// NewCollector registers the translation metrics with reg and returns
// the collector that feeds them.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "tetraglot_cache_hits_total",
			Help: "Number of translation requests answered from the cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "tetraglot_cache_misses_total",
			Help: "Number of translation requests that required a provider call",
		}),
		providerRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tetraglot_provider_requests_total",
			Help: "Number of provider calls by outcome",
		}, []string{"outcome"}),
		providerRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "tetraglot_provider_retries_total",
			Help: "Number of retried provider calls",
		}),
		translations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tetraglot_translations_total",
			Help: "Number of handled translation requests by mode and status",
		}, []string{"mode", "status"}),
		translationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tetraglot_translation_duration_seconds",
			Help:    "Duration of translation request handling in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		}, []string{"mode"}),
	}
}

// RecordCacheHit counts a request served from the cache.
func (c *Collector) RecordCacheHit() {
	if c == nil {
		return
	}
	c.cacheHits.Inc()
}

// RecordCacheMiss counts a request that fell through to the provider.
func (c *Collector) RecordCacheMiss() {
	if c == nil {
		return
	}
	c.cacheMisses.Inc()
}

// RecordProviderRequest counts one provider call with its outcome,
// "success" or "error".
func (c *Collector) RecordProviderRequest(outcome string) {
	if c == nil {
		return
	}
	c.providerRequests.WithLabelValues(outcome).Inc()
}

// RecordProviderRetry counts one retried provider call.
func (c *Collector) RecordProviderRetry() {
	if c == nil {
		return
	}
	c.providerRetries.Inc()
}

// RecordTranslation counts one handled request and observes its duration.
func (c *Collector) RecordTranslation(mode string, duration time.Duration, ok bool) {
	if c == nil {
		return
	}
	status := "success"
	if !ok {
		status = "error"
	}
	c.translations.WithLabelValues(mode, status).Inc()
	c.translationDuration.WithLabelValues(mode).Observe(duration.Seconds())
}
