package together

import "net/http"

// DefaultBaseURL is the default base URL for the Together AI API.
const DefaultBaseURL = "https://api.together.xyz/v1"

// Option is a functional option for configuring the Together adapter.
type Option func(*Together)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Together) {
		p.httpClient = client
	}
}

// WithHeaders sets additional headers to include in requests.
func WithHeaders(headers http.Header) Option {
	return func(p *Together) {
		p.headers = headers
	}
}
