package cerebras

import (
	"context"
	"net/http"

	"github.com/tessera-ai/tessera/core"
)

// Cerebras is the adapter for the Cerebras inference chat completion API.
// It holds no per-request state; concurrent calls are safe.
type Cerebras struct {
	config     core.ProviderConfig
	httpClient *http.Client
	headers    http.Header
}

// New creates a Cerebras adapter bound to the given provider configuration.
func New(cfg core.ProviderConfig, opts ...Option) *Cerebras {
	p := &Cerebras{
		config:     cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the provider identifier.
func (p *Cerebras) ID() core.ProviderID {
	return core.ProviderCerebras
}

// Models returns the static model catalog.
func (p *Cerebras) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

func (p *Cerebras) baseURL() string {
	if p.config.BaseURL != "" {
		return p.config.BaseURL
	}
	return DefaultBaseURL
}

func (p *Cerebras) buildHeaders() http.Header {
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

func (p *Cerebras) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.config.Timeout)
}

// Complete sends a non-streaming completion request.
func (p *Cerebras) Complete(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error) {
	return p.doComplete(ctx, req)
}

// Stream sends a streaming completion request.
func (p *Cerebras) Stream(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error) {
	return p.doStream(ctx, req)
}

// ListModels serves the static catalog. Cerebras has no model listing
// endpoint worth querying, so no network call is made.
func (p *Cerebras) ListModels(ctx context.Context) ([]core.ModelInfo, error) {
	return p.Models(), nil
}

var _ core.Provider = (*Cerebras)(nil)
