// Package tessera is a unified client for multiple LLM inference providers.
// It exposes one request/response surface for chat and vision completions
// across Groq, Together AI, Cerebras, and Hyperbolic, with provider
// differences (wire formats, parameter support, error shapes) absorbed by
// per-provider adapters.
//
// Basic usage:
//
//	client, err := tessera.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.ChatCompletion(ctx, &tessera.CompletionRequest{
//	    Model:    groq.ModelLlama33_70BVersatile,
//	    Messages: core.Prompt("Why is the sky blue?"),
//	})
//
// Credentials resolve from explicit configuration first, then from the
// provider's environment variable (GROQ_API_KEY, TOGETHER_API_KEY,
// CEREBRAS_API_KEY, HYPERBOLIC_API_KEY).
package tessera
