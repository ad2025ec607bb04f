package groq

import (
	"context"
	"net/http"

	"github.com/tessera-ai/tessera/core"
)

// Groq is the adapter for the Groq chat completion API.
// It holds no per-request state; concurrent calls are safe.
type Groq struct {
	config     core.ProviderConfig
	httpClient *http.Client
	headers    http.Header
}

// New creates a Groq adapter bound to the given provider configuration.
// Credentials come from the config store; the adapter never reads the
// environment itself.
func New(cfg core.ProviderConfig, opts ...Option) *Groq {
	p := &Groq{
		config:     cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the provider identifier.
func (p *Groq) ID() core.ProviderID {
	return core.ProviderGroq
}

// Models returns the static model catalog.
func (p *Groq) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

// baseURL returns the configured endpoint override or the default.
func (p *Groq) baseURL() string {
	if p.config.BaseURL != "" {
		return p.config.BaseURL
	}
	return DefaultBaseURL
}

// buildHeaders constructs the HTTP headers for an API request.
func (p *Groq) buildHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")
	for key, values := range p.headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}
	return headers
}

// withTimeout bounds ctx by the configured request timeout.
func (p *Groq) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.config.Timeout)
}

// Complete sends a non-streaming completion request.
func (p *Groq) Complete(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error) {
	return p.doComplete(ctx, req)
}

// Stream sends a streaming completion request.
func (p *Groq) Stream(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error) {
	return p.doStream(ctx, req)
}

// ListModels queries the live model listing endpoint.
func (p *Groq) ListModels(ctx context.Context) ([]core.ModelInfo, error) {
	return p.doListModels(ctx)
}

var _ core.Provider = (*Groq)(nil)
