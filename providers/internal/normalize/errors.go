// Package normalize provides shared provider error normalization helpers.
// All four built-in providers speak OpenAI-style error envelopes, so the
// status→taxonomy mapping lives here once.
package normalize

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tessera-ai/tessera/core"
)

// openAIStyleErrorResponse represents providers that return:
// {"error":{"message":"...","type":"...","code":"..."}}
type openAIStyleErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// HTTPError normalizes an OpenAI-style error response into a classified
// *core.ProviderError, preserving the provider's message and error code.
// retryAfter carries a provider-supplied throttling hint, zero if absent.
func HTTPError(provider core.ProviderID, status int, body []byte, retryAfter time.Duration) error {
	var errResp openAIStyleErrorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}
	code := errResp.Error.Code
	if code == "" {
		code = errResp.Error.Type
	}

	return &core.ProviderError{
		Provider:   provider,
		Status:     status,
		Code:       code,
		Message:    message,
		RetryAfter: retryAfter,
		Err:        SentinelForStatus(status),
	}
}

// NetworkError wraps transport failures. They are unclassified
// provider-side failures and therefore retryable.
func NetworkError(provider core.ProviderID, err error) error {
	if timeoutErr := timeoutFrom(provider, err); timeoutErr != nil {
		return timeoutErr
	}
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrProviderFailure,
	}
}

// DecodeError wraps response parsing failures. A provider emitting
// undecodable output is a provider-side failure.
func DecodeError(provider core.ProviderID, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  "decoding response: " + err.Error(),
		Err:      core.ErrProviderFailure,
	}
}

// timeoutFrom classifies deadline expiry as the timeout kind; other errors
// return nil and keep their own classification.
func timeoutFrom(provider core.ProviderID, err error) error {
	if !errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return &core.ProviderError{
		Provider: provider,
		Message:  "request exceeded configured timeout",
		Err:      core.ErrTimeout,
	}
}

// SentinelForStatus maps an HTTP status code to a taxonomy sentinel.
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrAuthentication
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case status == http.StatusBadRequest,
		status == http.StatusNotFound,
		status == http.StatusUnprocessableEntity:
		return core.ErrValidation
	case status == http.StatusRequestTimeout:
		return core.ErrTimeout
	default:
		return core.ErrProviderFailure
	}
}

// RetryAfter parses a Retry-After response header, accepting both
// delta-seconds and HTTP-date forms. Returns zero when absent or invalid.
func RetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
