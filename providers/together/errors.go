package together

import (
	"net/http"
	"time"

	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers/internal/normalize"
)

func normalizeError(status int, body []byte, retryAfter time.Duration) error {
	return normalize.HTTPError(core.ProviderTogether, status, body, retryAfter)
}

func newNetworkError(err error) error {
	return normalize.NetworkError(core.ProviderTogether, err)
}

func newDecodeError(err error) error {
	return normalize.DecodeError(core.ProviderTogether, err)
}

func retryAfterFrom(h http.Header) time.Duration {
	return normalize.RetryAfter(h)
}
