package hyperbolic

import "net/http"

// DefaultBaseURL is the default base URL for the Hyperbolic API.
const DefaultBaseURL = "https://api.hyperbolic.xyz/v1"

// Option is a functional option for configuring the Hyperbolic adapter.
type Option func(*Hyperbolic)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Hyperbolic) {
		p.httpClient = client
	}
}

// WithHeaders sets additional headers to include in requests.
func WithHeaders(headers http.Header) Option {
	return func(p *Hyperbolic) {
		p.headers = headers
	}
}
