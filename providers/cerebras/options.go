package cerebras

import "net/http"

// DefaultBaseURL is the default base URL for the Cerebras inference API.
const DefaultBaseURL = "https://api.cerebras.ai/v1"

// Option is a functional option for configuring the Cerebras adapter.
type Option func(*Cerebras)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Cerebras) {
		p.httpClient = client
	}
}

// WithHeaders sets additional headers to include in requests.
func WithHeaders(headers http.Header) Option {
	return func(p *Cerebras) {
		p.headers = headers
	}
}
