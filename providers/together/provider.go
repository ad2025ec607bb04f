package together

import (
	"context"
	"net/http"

	"github.com/tessera-ai/tessera/core"
)

// Together is the adapter for the Together AI chat completion API.
// It holds no per-request state; concurrent calls are safe.
type Together struct {
	config     core.ProviderConfig
	httpClient *http.Client
	headers    http.Header
}

// New creates a Together adapter bound to the given provider configuration.
func New(cfg core.ProviderConfig, opts ...Option) *Together {
	p := &Together{
		config:     cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the provider identifier.
func (p *Together) ID() core.ProviderID {
	return core.ProviderTogether
}

// Models returns the static model catalog.
func (p *Together) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

func (p *Together) baseURL() string {
	if p.config.BaseURL != "" {
		return p.config.BaseURL
	}
	return DefaultBaseURL
}

func (p *Together) buildHeaders() http.Header {
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

func (p *Together) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.config.Timeout)
}

// Complete sends a non-streaming completion request.
func (p *Together) Complete(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error) {
	return p.doComplete(ctx, req)
}

// Stream sends a streaming completion request.
func (p *Together) Stream(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error) {
	return p.doStream(ctx, req)
}

// ListModels queries the live model listing endpoint.
func (p *Together) ListModels(ctx context.Context) ([]core.ModelInfo, error) {
	return p.doListModels(ctx)
}

var _ core.Provider = (*Together)(nil)
