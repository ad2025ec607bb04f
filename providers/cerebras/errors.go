package cerebras

import (
	"net/http"
	"time"

	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers/internal/normalize"
)

func normalizeError(status int, body []byte, retryAfter time.Duration) error {
	return normalize.HTTPError(core.ProviderCerebras, status, body, retryAfter)
}

func newNetworkError(err error) error {
	return normalize.NetworkError(core.ProviderCerebras, err)
}

func newDecodeError(err error) error {
	return normalize.DecodeError(core.ProviderCerebras, err)
}

func retryAfterFrom(h http.Header) time.Duration {
	return normalize.RetryAfter(h)
}
