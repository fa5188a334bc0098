package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/tetraglot/internal/metrics"
)

// DefaultBackoff is the base delay between retried provider calls. The
// actual delay grows linearly with the attempt number.
const DefaultBackoff = 500 * time.Millisecond

// RetryPolicy bounds how often a failed provider call is repeated.
// Translation has no side effect on the provider, so a failed call can
// be reissued with the same request.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
	// Sleep replaces the context-aware delay when set. Tests use it to
	// avoid real waiting.
	Sleep func(time.Duration)
}

func (p RetryPolicy) wait(ctx context.Context, attempt int) error {
	backoff := p.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	delay := time.Duration(attempt) * backoff
	if p.Sleep != nil {
		p.Sleep(delay)
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retrying wraps a backend with bounded retries and a circuit breaker.
type Retrying struct {
	inner     Provider
	policy    RetryPolicy
	breaker   *gobreaker.CircuitBreaker
	logger    *logrus.Logger
	collector *metrics.Collector
}

// NewRetrying wraps inner with policy. The collector may be nil.
func NewRetrying(inner Provider, policy RetryPolicy, logger *logrus.Logger, collector *metrics.Collector) *Retrying {
	if logger == nil {
		logger = logrus.New()
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: inner.Name(),
	})
	return &Retrying{
		inner:     inner,
		policy:    policy,
		breaker:   breaker,
		logger:    logger,
		collector: collector,
	}
}

// Name implements Provider.
func (r *Retrying) Name() string {
	return r.inner.Name()
}

// Translate implements Provider. It retries failed calls up to the
// policy bound and surfaces the last error once the bound is exhausted.
func (r *Retrying) Translate(ctx context.Context, req Request) (*Response, error) {
	attempts := r.policy.MaxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := r.breaker.Execute(func() (interface{}, error) {
			return r.inner.Translate(ctx, req)
		})
		if err == nil {
			r.collector.RecordProviderRequest("success")
			return result.(*Response), nil
		}

		lastErr = err
		r.collector.RecordProviderRequest("error")
		r.logger.WithFields(logrus.Fields{
			"provider": r.inner.Name(),
			"attempt":  attempt,
			"attempts": attempts,
		}).WithError(err).Warn("Provider request failed")

		if attempt < attempts {
			r.collector.RecordProviderRetry()
			if err := r.policy.wait(ctx, attempt); err != nil {
				return nil, fmt.Errorf("translation aborted: %w", err)
			}
		}
	}
	return nil, fmt.Errorf("translation failed after %d attempts: %w", attempts, lastErr)
}
