package core

import (
	"math"
	"math/rand"
	"time"
)

// RetryPolicy determines retry behavior for failed requests.
type RetryPolicy interface {
	// NextDelay returns the delay before the next retry attempt and whether
	// to retry. If ok is false, no more retries should be attempted.
	// attempt starts at 0 for the first retry after the initial failure.
	NextDelay(attempt int, err error) (delay time.Duration, ok bool)
}

// RetryConfig configures retry behavior.
//
// MaxRetries is taken literally: zero means fail immediately with no
// backoff wait, even when the error carries a retry-after hint.
type RetryConfig struct {
	MaxRetries int           // maximum number of retry attempts
	BaseDelay  time.Duration // initial delay before first retry (default: 1s)
	MaxDelay   time.Duration // maximum delay cap (default: 30s)
	Jitter     float64       // jitter factor 0.0-1.0 (default: 0.2)
}

// DefaultRetryConfig returns the backoff shape used when a client supplies
// none: exponential backoff with jitter, 1s base, 30s cap.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Jitter:     0.2,
	}
}

// NewRetryPolicy creates a retry policy with the given configuration.
// Transient errors (see Retryable) are retried; everything else propagates
// on first occurrence.
func NewRetryPolicy(cfg RetryConfig) RetryPolicy {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.Jitter < 0 || cfg.Jitter > 1 {
		cfg.Jitter = 0.2
	}
	return &exponentialBackoff{cfg: cfg}
}

type exponentialBackoff struct {
	cfg RetryConfig
}

func (e *exponentialBackoff) NextDelay(attempt int, err error) (time.Duration, bool) {
	if attempt >= e.cfg.MaxRetries {
		return 0, false
	}
	if !Retryable(err) {
		return 0, false
	}

	// A provider-supplied retry-after hint replaces the computed backoff
	// for this attempt, still subject to the delay cap.
	if hint := RetryAfterHint(err); hint > 0 {
		if hint > e.cfg.MaxDelay {
			hint = e.cfg.MaxDelay
		}
		return hint, true
	}

	// Exponential backoff: baseDelay * 2^attempt.
	delay := float64(e.cfg.BaseDelay) * math.Pow(2, float64(attempt))

	// Apply jitter: delay * (1 + random(-jitter, +jitter)).
	if e.cfg.Jitter > 0 {
		jitterRange := delay * e.cfg.Jitter
		delay += (rand.Float64()*2 - 1) * jitterRange
	}

	if delay > float64(e.cfg.MaxDelay) {
		delay = float64(e.cfg.MaxDelay)
	}
	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay), true
}
