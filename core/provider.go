package core

import "context"

// Provider is the capability contract every adapter implements: translate a
// unified request into the vendor's native call and translate native
// responses or streamed chunks back into unified types.
//
// Adapters hold no per-request mutable state beyond their bound
// ProviderConfig, so concurrent calls through one instance are safe.
type Provider interface {
	// ID returns the provider identifier.
	ID() ProviderID

	// Complete sends a non-streaming completion request. The call is
	// bounded by the configured timeout.
	Complete(ctx context.Context, req *CompletionRequest) (*ChatResponse, error)

	// Stream sends a streaming completion request. The returned stream is
	// finite, ordered, and restartable only by reissuing the request.
	Stream(ctx context.Context, req *CompletionRequest) (*ChatStream, error)

	// ListModels returns the models available from this provider, querying
	// the provider's listing capability or falling back to a static table
	// for providers without one.
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
