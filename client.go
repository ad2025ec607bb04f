package tessera

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tessera-ai/tessera/config"
	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers"
)

// Convenience aliases so most callers only import this package.
type (
	CompletionRequest = core.CompletionRequest
	ChatResponse      = core.ChatResponse
	ChatStream        = core.ChatStream
	Message           = core.Message
	ModelInfo         = core.ModelInfo
	ProviderID        = core.ProviderID
	ProviderConfig    = core.ProviderConfig
)

// Client is the unified entry point. It routes requests to per-provider
// adapters, applies retry with exponential backoff to transient failures,
// and surfaces every error through the unified taxonomy.
//
// A Client is safe for concurrent use. Adapters are created lazily on first
// use of a provider and cached.
type Client struct {
	store     *config.Store
	telemetry core.TelemetryHook
	retryCfg  *core.RetryConfig

	mu       sync.RWMutex
	adapters map[core.ProviderID]core.Provider
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithTelemetry sets a telemetry hook receiving request lifecycle events.
func WithTelemetry(hook core.TelemetryHook) Option {
	return func(c *Client) {
		if hook != nil {
			c.telemetry = hook
		}
	}
}

// WithRetryConfig replaces the retry behavior for all providers, including
// each provider's configured MaxRetries.
func WithRetryConfig(cfg core.RetryConfig) Option {
	return func(c *Client) {
		c.retryCfg = &cfg
	}
}

// WithAdapter pre-installs an adapter for a provider, bypassing the registry
// and credential resolution. Intended for tests and custom transports.
func WithAdapter(id core.ProviderID, p core.Provider) Option {
	return func(c *Client) {
		c.adapters[id] = p
	}
}

// New creates a Client configured from the environment. Every provider whose
// API key variable is set is registered; the first one found becomes the
// default. Providers configured later via AddProvider, or resolvable lazily
// from the environment, work too, so an empty environment is not an error.
func New(opts ...Option) (*Client, error) {
	return NewWithConfig(config.FromEnv(), opts...)
}

// NewWithConfig creates a Client from explicit configuration. Explicit
// entries win over environment variables; providers absent from cfg still
// resolve lazily from the environment on first use.
func NewWithConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	c := &Client{
		store:     config.NewStore(cfg),
		telemetry: core.NoopTelemetryHook{},
		adapters:  make(map[core.ProviderID]core.Provider),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromFile creates a Client from a YAML configuration file.
func NewFromFile(path string, opts ...Option) (*Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, opts...)
}

// AddProvider registers or replaces a provider's configuration at runtime.
// The swap is atomic: in-flight requests keep the adapter they resolved,
// subsequent requests see the new configuration.
func (c *Client) AddProvider(p core.ProviderID, pc core.ProviderConfig) {
	c.store.Add(p, pc)
	c.mu.Lock()
	delete(c.adapters, p)
	c.mu.Unlock()
}

// Providers returns the currently configured providers in registration order.
func (c *Client) Providers() []core.ProviderID {
	return c.store.Providers()
}

// DefaultProvider returns the provider used when a request names none.
func (c *Client) DefaultProvider() core.ProviderID {
	return c.store.Default()
}

// resolveProvider picks the target provider for a request, falling back to
// the store default when the request names none.
func (c *Client) resolveProvider(p core.ProviderID) (core.ProviderID, error) {
	if p != "" {
		return p, nil
	}
	if def := c.store.Default(); def != "" {
		return def, nil
	}
	return "", fmt.Errorf("%w: no provider specified and none configured", core.ErrConfiguration)
}

// adapterFor returns the cached adapter for a provider, creating it from the
// resolved configuration on first use.
func (c *Client) adapterFor(p core.ProviderID) (core.Provider, core.ProviderConfig, error) {
	c.mu.RLock()
	adapter, ok := c.adapters[p]
	c.mu.RUnlock()

	pc, err := c.store.Resolve(p)
	if err != nil {
		if ok {
			// Pre-installed adapters carry their own transport; retry and
			// timeout fall back to the stock defaults.
			return adapter, core.NewProviderConfig(""), nil
		}
		return nil, core.ProviderConfig{}, err
	}
	if ok {
		return adapter, pc, nil
	}

	created, err := providers.Create(p, pc)
	if err != nil {
		return nil, core.ProviderConfig{}, err
	}

	c.mu.Lock()
	// Keep the adapter that got there first so concurrent callers share one.
	if existing, ok := c.adapters[p]; ok {
		created = existing
	} else {
		c.adapters[p] = created
	}
	c.mu.Unlock()
	return created, pc, nil
}

// retryPolicyFor builds the retry policy for one dispatch. A client-level
// override wins; otherwise the default backoff shape is used with the
// provider's configured MaxRetries.
func (c *Client) retryPolicyFor(pc core.ProviderConfig) core.RetryPolicy {
	if c.retryCfg != nil {
		return core.NewRetryPolicy(*c.retryCfg)
	}
	cfg := core.DefaultRetryConfig()
	cfg.MaxRetries = pc.MaxRetries
	return core.NewRetryPolicy(cfg)
}

// ChatCompletion sends a completion request and blocks until the full
// response is available. Transient failures (rate limits, timeouts,
// provider-side errors) are retried with exponential backoff up to the
// provider's retry limit; the last error is surfaced unchanged.
func (c *Client) ChatCompletion(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := c.resolveProvider(req.Provider)
	if err != nil {
		return nil, err
	}
	adapter, pc, err := c.adapterFor(p)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c.telemetry.OnRequestStart(core.RequestStartEvent{
		Provider: p,
		Model:    req.Model,
		Start:    start,
	})

	policy := c.retryPolicyFor(pc)
	attempts := 0
	for {
		attempts++
		resp, err := adapter.Complete(ctx, req)
		if err == nil {
			c.emitEnd(p, req.Model, false, start, attempts, resp.Usage, nil)
			return resp, nil
		}

		delay, retry := policy.NextDelay(attempts-1, err)
		if !retry {
			c.emitEnd(p, req.Model, false, start, attempts, nil, err)
			return nil, err
		}
		if werr := sleepCtx(ctx, delay); werr != nil {
			c.emitEnd(p, req.Model, false, start, attempts, nil, werr)
			return nil, werr
		}
	}
}

// Chat is the bare-string convenience form of ChatCompletion: the prompt is
// wrapped into a single user message and sent to the default provider.
func (c *Client) Chat(ctx context.Context, model, prompt string) (*core.ChatResponse, error) {
	return c.ChatCompletion(ctx, &core.CompletionRequest{
		Model:    model,
		Messages: core.Prompt(prompt),
	})
}

// StreamChat is the bare-string convenience form of StreamChatCompletion.
func (c *Client) StreamChat(ctx context.Context, model, prompt string) (*core.ChatStream, error) {
	return c.StreamChatCompletion(ctx, &core.CompletionRequest{
		Model:    model,
		Messages: core.Prompt(prompt),
	})
}

// StreamChatCompletion sends a streaming completion request. Only stream
// initiation is retried; once chunks start flowing a failure ends the stream
// with an error, since already-yielded chunks cannot be un-yielded.
func (c *Client) StreamChatCompletion(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := c.resolveProvider(req.Provider)
	if err != nil {
		return nil, err
	}
	adapter, pc, err := c.adapterFor(p)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c.telemetry.OnRequestStart(core.RequestStartEvent{
		Provider: p,
		Model:    req.Model,
		Stream:   true,
		Start:    start,
	})

	policy := c.retryPolicyFor(pc)
	attempts := 0
	for {
		attempts++
		stream, err := adapter.Stream(ctx, req)
		if err == nil {
			return c.wrapStream(stream, p, req.Model, start, attempts), nil
		}

		delay, retry := policy.NextDelay(attempts-1, err)
		if !retry {
			c.emitEnd(p, req.Model, true, start, attempts, nil, err)
			return nil, err
		}
		if werr := sleepCtx(ctx, delay); werr != nil {
			c.emitEnd(p, req.Model, true, start, attempts, nil, werr)
			return nil, werr
		}
	}
}

// wrapStream forwards an adapter stream unchanged while observing its end so
// the telemetry hook fires exactly once per streaming request. Close unblocks
// the forwarding goroutine even when the consumer never reads a chunk, so an
// abandoned stream still emits its end event instead of leaking.
func (c *Client) wrapStream(inner *core.ChatStream, p core.ProviderID, model string, start time.Time, attempts int) *core.ChatStream {
	chunkCh := make(chan core.ChatChunk, 16)
	errCh := make(chan error, 1)
	finalCh := make(chan *core.ChatResponse, 1)
	done := make(chan struct{})
	var closeOnce sync.Once

	stop := func() {
		inner.Close()
		closeOnce.Do(func() { close(done) })
	}

	go func() {
		defer close(chunkCh)
		defer close(errCh)
		defer close(finalCh)

		var usage *core.TokenUsage
		var streamErr error
		defer func() { c.emitEnd(p, model, true, start, attempts, usage, streamErr) }()

		in, ie, fi := inner.Ch, inner.Err, inner.Final
		for in != nil || ie != nil || fi != nil {
			select {
			case <-done:
				return
			case chunk, ok := <-in:
				if !ok {
					in = nil
					continue
				}
				select {
				case chunkCh <- chunk:
				case <-done:
					return
				}
			case err, ok := <-ie:
				if !ok {
					ie = nil
					continue
				}
				streamErr = err
				// Err emits at most once, so the one-slot buffer never blocks.
				errCh <- err
			case resp, ok := <-fi:
				if !ok {
					fi = nil
					continue
				}
				if resp != nil {
					usage = resp.Usage
				}
				finalCh <- resp
			}
		}
	}()

	return core.NewChatStream(chunkCh, errCh, finalCh, stop)
}

func (c *Client) emitEnd(p core.ProviderID, model string, stream bool, start time.Time, attempts int, usage *core.TokenUsage, err error) {
	c.telemetry.OnRequestEnd(core.RequestEndEvent{
		Provider: p,
		Model:    model,
		Stream:   stream,
		Start:    start,
		End:      time.Now(),
		Attempts: attempts,
		Usage:    usage,
		Err:      err,
	})
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
