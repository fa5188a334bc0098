package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// scriptedBackend fails a fixed number of times before answering.
type scriptedBackend struct {
	failures int
	calls    int
	resp     *Response
}

func (s *scriptedBackend) Name() string { return "scripted" }

func (s *scriptedBackend) Translate(ctx context.Context, req Request) (*Response, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("backend unavailable")
	}
	return s.resp, nil
}

func noSleep(time.Duration) {}

func TestRetryingSucceedsFirstAttempt(t *testing.T) {
	inner := &scriptedBackend{resp: &Response{DetectedLanguage: "de"}}
	retrying := NewRetrying(inner, RetryPolicy{MaxRetries: 2, Sleep: noSleep}, nil, nil)

	resp, err := retrying.Translate(context.Background(), Request{Text: "Hallo", Targets: []string{"en"}})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if resp.DetectedLanguage != "de" {
		t.Errorf("detected = %q", resp.DetectedLanguage)
	}
	if inner.calls != 1 {
		t.Errorf("backend called %d times, want 1", inner.calls)
	}
}

func TestRetryingRecoversAfterFailure(t *testing.T) {
	var delays []time.Duration
	inner := &scriptedBackend{failures: 2, resp: &Response{DetectedLanguage: "en"}}
	policy := RetryPolicy{
		MaxRetries: 2,
		Backoff:    10 * time.Millisecond,
		Sleep:      func(d time.Duration) { delays = append(delays, d) },
	}
	retrying := NewRetrying(inner, policy, nil, nil)

	if _, err := retrying.Translate(context.Background(), Request{Text: "hi", Targets: []string{"de"}}); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("backend called %d times, want 3", inner.calls)
	}
	// Backoff grows linearly with the attempt number.
	if len(delays) != 2 || delays[0] != 10*time.Millisecond || delays[1] != 20*time.Millisecond {
		t.Errorf("delays = %v, want [10ms 20ms]", delays)
	}
}

func TestRetryingExhaustsAttempts(t *testing.T) {
	inner := &scriptedBackend{failures: 10}
	retrying := NewRetrying(inner, RetryPolicy{MaxRetries: 2, Sleep: noSleep}, nil, nil)

	_, err := retrying.Translate(context.Background(), Request{Text: "hi", Targets: []string{"de"}})
	if err == nil {
		t.Fatal("Translate succeeded, want exhaustion error")
	}
	if inner.calls != 3 {
		t.Errorf("backend called %d times, want 3", inner.calls)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error = %v, want attempt count", err)
	}
}

func TestRetryingBreakerStopsHammering(t *testing.T) {
	inner := &scriptedBackend{failures: 100}
	retrying := NewRetrying(inner, RetryPolicy{MaxRetries: 9, Sleep: noSleep}, nil, nil)

	if _, err := retrying.Translate(context.Background(), Request{Text: "hi", Targets: []string{"de"}}); err == nil {
		t.Fatal("Translate succeeded, want error")
	}
	// The breaker opens after six consecutive failures, so the remaining
	// attempts never reach the backend.
	if inner.calls != 6 {
		t.Errorf("backend called %d times, want 6", inner.calls)
	}
}

func TestRetryingName(t *testing.T) {
	retrying := NewRetrying(&scriptedBackend{}, RetryPolicy{}, nil, nil)
	if retrying.Name() != "scripted" {
		t.Errorf("name = %q, want the inner backend name", retrying.Name())
	}
}
