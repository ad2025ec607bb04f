package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Error kinds of the unified taxonomy. Every adapter maps its native
// failures into exactly one of these; callers classify with errors.Is.
var (
	// ErrAuthentication marks an invalid or rejected credential. Not retried.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimited marks provider throttling. Retried with backoff,
	// honoring a provider-supplied retry-after hint when present.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation marks a malformed request shape. Not retried.
	ErrValidation = errors.New("invalid request")

	// ErrUnsupportedFeature marks a capability absent for a provider/model
	// pair, such as image input on a text-only model. Not retried.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrProviderFailure is the catch-all for provider-side failures not
	// otherwise classified. Retried up to the configured limit.
	ErrProviderFailure = errors.New("provider failure")

	// ErrConfiguration marks missing setup, such as an unresolvable
	// credential. Not retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrTimeout marks a call that exceeded the configured timeout. Retried.
	ErrTimeout = errors.New("timed out")
)

// Validation errors with actionable guidance.
var (
	ErrModelRequired = fmt.Errorf("%w: model required", ErrValidation)
	ErrNoMessages    = fmt.Errorf("%w: at least one non-empty message required", ErrValidation)
)

// validationf builds a ValidationError with a formatted detail message.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ProviderError carries the full context of a classified provider failure.
// Err holds the taxonomy sentinel, so errors.Is(err, core.ErrRateLimited)
// and friends work on the wrapped value.
type ProviderError struct {
	Provider   ProviderID
	Status     int
	Code       string
	Message    string
	RetryAfter time.Duration // provider-supplied throttling hint, zero if absent
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status=%d, code=%s)", e.Provider, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap returns the taxonomy sentinel for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether an error is classified as transient: rate
// limiting, timeouts, and unclassified provider failures. Context
// cancellation and all other kinds propagate without retry.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrProviderFailure)
}

// RetryAfterHint extracts a provider-supplied retry-after hint from an
// error chain, or zero when none is present.
func RetryAfterHint(err error) time.Duration {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.RetryAfter
	}
	return 0
}
