package groq

import "net/http"

// DefaultBaseURL is the default base URL for the Groq OpenAI-compatible API.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Option is a functional option for configuring the Groq adapter.
type Option func(*Groq)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Groq) {
		p.httpClient = client
	}
}

// WithHeaders sets additional headers to include in requests.
func WithHeaders(headers http.Header) Option {
	return func(p *Groq) {
		p.headers = headers
	}
}
