package normalize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tessera-ai/tessera/core"
)

func TestHTTPErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, core.ErrAuthentication},
		{http.StatusForbidden, core.ErrAuthentication},
		{http.StatusTooManyRequests, core.ErrRateLimited},
		{http.StatusBadRequest, core.ErrValidation},
		{http.StatusNotFound, core.ErrValidation},
		{http.StatusUnprocessableEntity, core.ErrValidation},
		{http.StatusRequestTimeout, core.ErrTimeout},
		{http.StatusInternalServerError, core.ErrProviderFailure},
		{http.StatusBadGateway, core.ErrProviderFailure},
		{http.StatusServiceUnavailable, core.ErrProviderFailure},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := HTTPError(core.ProviderGroq, tt.status, nil, 0)
			if !errors.Is(err, tt.want) {
				t.Errorf("status %d classified as %v, want %v", tt.status, err, tt.want)
			}
		})
	}
}

func TestHTTPErrorPreservesBody(t *testing.T) {
	body := []byte(`{"error":{"message":"invalid api key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	err := HTTPError(core.ProviderTogether, 401, body, 0)

	var pe *core.ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("not a *core.ProviderError")
	}
	if pe.Provider != core.ProviderTogether {
		t.Errorf("Provider = %q", pe.Provider)
	}
	if pe.Message != "invalid api key" {
		t.Errorf("Message = %q", pe.Message)
	}
	if pe.Code != "invalid_api_key" {
		t.Errorf("Code = %q", pe.Code)
	}
	if pe.Status != 401 {
		t.Errorf("Status = %d", pe.Status)
	}
}

func TestHTTPErrorFallbacks(t *testing.T) {
	// Undecodable body falls back to the status text; type fills in for a
	// missing code.
	err := HTTPError(core.ProviderGroq, 500, []byte("<html>oops</html>"), 0)
	var pe *core.ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("not a *core.ProviderError")
	}
	if pe.Message != http.StatusText(500) {
		t.Errorf("Message = %q, want status text", pe.Message)
	}

	body := []byte(`{"error":{"message":"m","type":"server_error"}}`)
	err = HTTPError(core.ProviderGroq, 500, body, 0)
	errors.As(err, &pe)
	if pe.Code != "server_error" {
		t.Errorf("Code = %q, want type fallback", pe.Code)
	}
}

func TestHTTPErrorCarriesRetryAfter(t *testing.T) {
	err := HTTPError(core.ProviderGroq, 429, nil, 9*time.Second)
	if got := core.RetryAfterHint(err); got != 9*time.Second {
		t.Errorf("RetryAfterHint = %v, want 9s", got)
	}
}

func TestNetworkError(t *testing.T) {
	err := NetworkError(core.ProviderCerebras, errors.New("connection refused"))
	if !errors.Is(err, core.ErrProviderFailure) {
		t.Errorf("network error = %v, want ErrProviderFailure", err)
	}

	err = NetworkError(core.ProviderCerebras, fmt.Errorf("do: %w", context.DeadlineExceeded))
	if !errors.Is(err, core.ErrTimeout) {
		t.Errorf("deadline error = %v, want ErrTimeout", err)
	}
}

func TestDecodeError(t *testing.T) {
	err := DecodeError(core.ProviderHyperbolic, errors.New("unexpected EOF"))
	if !errors.Is(err, core.ErrProviderFailure) {
		t.Errorf("decode error = %v, want ErrProviderFailure", err)
	}
}

func TestRetryAfterHeader(t *testing.T) {
	h := http.Header{}
	if got := RetryAfter(h); got != 0 {
		t.Errorf("absent header = %v, want 0", got)
	}

	h.Set("Retry-After", "12")
	if got := RetryAfter(h); got != 12*time.Second {
		t.Errorf("delta-seconds = %v, want 12s", got)
	}

	h.Set("Retry-After", time.Now().Add(30*time.Second).UTC().Format(http.TimeFormat))
	got := RetryAfter(h)
	if got < 25*time.Second || got > 30*time.Second {
		t.Errorf("HTTP-date = %v, want about 30s", got)
	}

	h.Set("Retry-After", "soon")
	if got := RetryAfter(h); got != 0 {
		t.Errorf("invalid header = %v, want 0", got)
	}

	h.Set("Retry-After", "-5")
	if got := RetryAfter(h); got != 0 {
		t.Errorf("negative header = %v, want 0", got)
	}
}
