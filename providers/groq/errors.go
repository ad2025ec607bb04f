package groq

import (
	"net/http"
	"time"

	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers/internal/normalize"
)

// normalizeError converts an HTTP error response into a classified
// *core.ProviderError.
func normalizeError(status int, body []byte, retryAfter time.Duration) error {
	return normalize.HTTPError(core.ProviderGroq, status, body, retryAfter)
}

// newNetworkError classifies transport failures, including timeout expiry.
func newNetworkError(err error) error {
	return normalize.NetworkError(core.ProviderGroq, err)
}

// newDecodeError classifies response parsing failures.
func newDecodeError(err error) error {
	return normalize.DecodeError(core.ProviderGroq, err)
}

// retryAfterFrom reads a throttling hint from response headers.
func retryAfterFrom(h http.Header) time.Duration {
	return normalize.RetryAfter(h)
}
