// Package providers contains the per-provider adapter implementations for
// Tessera and the registry the unified client selects them from.
//
// Each adapter lives in its own subpackage (providers/groq,
// providers/together, providers/cerebras, providers/hyperbolic) and
// implements the core.Provider capability contract:
//
//	type Provider interface {
//	    ID() core.ProviderID
//	    Complete(ctx context.Context, req *core.CompletionRequest) (*core.ChatResponse, error)
//	    Stream(ctx context.Context, req *core.CompletionRequest) (*core.ChatStream, error)
//	    ListModels(ctx context.Context) ([]core.ModelInfo, error)
//	}
//
// # Translation rules
//
// Role names map 1:1 to the provider's role vocabulary; unknown roles fail
// with a validation error rather than being coerced. Sampling parameters
// pass through unmodified; a parameter a provider does not accept is
// silently omitted so the provider's own default applies. Image parts sent
// to a model not marked vision-capable fail fast before any network call.
//
// # Streaming
//
// Stream returns a *core.ChatStream. Adapters MUST close all three
// channels when finished, emit at most one error, deliver chunks in
// provider emission order, and release the network connection promptly
// when the consumer calls Close or the context ends.
//
// # Errors
//
// Adapters never swallow native errors: every native failure is classified
// into exactly one taxonomy kind via providers/internal/normalize, with the
// provider's human-readable message and error code preserved. Unmapped
// failures default to core.ErrProviderFailure.
package providers

import "github.com/tessera-ai/tessera/core"

// Re-export core types for convenience, so adapter implementations can
// import just the providers package.
type (
	// Provider is the capability contract adapters implement.
	Provider = core.Provider

	// ProviderID identifies a supported completion provider.
	ProviderID = core.ProviderID

	// CompletionRequest represents a unified chat completion request.
	CompletionRequest = core.CompletionRequest

	// ChatResponse represents a unified non-streaming completion result.
	ChatResponse = core.ChatResponse

	// ChatStream represents a streaming completion in progress.
	ChatStream = core.ChatStream

	// ChatChunk represents an incremental streaming response.
	ChatChunk = core.ChatChunk

	// Message represents a single message in a conversation.
	Message = core.Message

	// ModelInfo describes a model available from a provider.
	ModelInfo = core.ModelInfo

	// ProviderConfig holds per-provider connection settings.
	ProviderConfig = core.ProviderConfig

	// TokenUsage tracks token consumption for a request.
	TokenUsage = core.TokenUsage
)

// Re-export taxonomy sentinels.
var (
	ErrAuthentication     = core.ErrAuthentication
	ErrRateLimited        = core.ErrRateLimited
	ErrValidation         = core.ErrValidation
	ErrUnsupportedFeature = core.ErrUnsupportedFeature
	ErrProviderFailure    = core.ErrProviderFailure
	ErrConfiguration      = core.ErrConfiguration
	ErrTimeout            = core.ErrTimeout
)
