// Package cerebras provides the Cerebras inference provider adapter for
// Tessera. Cerebras exposes no usable model listing capability, so
// ListModels serves the static catalog below.
package cerebras

import "github.com/tessera-ai/tessera/core"

// Model constants for Cerebras models.
const (
	ModelLlama4Scout     = "llama-4-scout-17b-16e-instruct"
	ModelLlama31_8B      = "llama3.1-8b"
	ModelLlama33_70B     = "llama-3.3-70b"
	ModelGPTOSS120B      = "gpt-oss-120b"
	ModelQwen3_32B       = "qwen-3-32b"
	ModelLlama4Maverick  = "llama-4-maverick-17b-128e-instruct"
	ModelQwen3_235B      = "qwen-3-235b-a22b-instruct-2507"
	ModelQwen3_235BThink = "qwen-3-235b-a22b-thinking-2507"
	ModelQwen3Coder480B  = "qwen-3-coder-480b"
)

// models is the full catalog. Scout and Maverick are the only
// vision-capable entries; everything else rejects image input.
var models = []core.ModelInfo{
	{
		ID:                ModelLlama4Scout,
		Provider:          core.ProviderCerebras,
		Name:              "Llama 4 Scout",
		Description:       "109B parameter model with ~2600 tokens/s speed",
		ContextLength:     32768,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama31_8B,
		Provider:          core.ProviderCerebras,
		Name:              "Llama 3.1 8B",
		Description:       "8B parameter model with ~2200 tokens/s speed",
		ContextLength:     32768,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama33_70B,
		Provider:          core.ProviderCerebras,
		Name:              "Llama 3.3 70B",
		Description:       "70B parameter model with ~2100 tokens/s speed",
		ContextLength:     32768,
		SupportsStreaming: true,
	},
	{
		ID:                ModelGPTOSS120B,
		Provider:          core.ProviderCerebras,
		Name:              "OpenAI GPT OSS",
		Description:       "120B parameter model with ~2800 tokens/s speed",
		ContextLength:     65536,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen3_32B,
		Provider:          core.ProviderCerebras,
		Name:              "Qwen 3 32B",
		Description:       "32B parameter model with ~2600 tokens/s speed",
		ContextLength:     32768,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama4Maverick,
		Provider:          core.ProviderCerebras,
		Name:              "Llama 4 Maverick",
		Description:       "400B parameter model with ~2400 tokens/s speed (Preview)",
		ContextLength:     32768,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen3_235B,
		Provider:          core.ProviderCerebras,
		Name:              "Qwen 3 235B Instruct",
		Description:       "235B parameter model with ~1400 tokens/s speed (Preview)",
		ContextLength:     65536,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen3_235BThink,
		Provider:          core.ProviderCerebras,
		Name:              "Qwen 3 235B Thinking",
		Description:       "235B parameter model with ~1700 tokens/s speed (Preview)",
		ContextLength:     65536,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen3Coder480B,
		Provider:          core.ProviderCerebras,
		Name:              "Qwen 3 480B Coder",
		Description:       "480B parameter coding model (Preview)",
		ContextLength:     65536,
		SupportsStreaming: true,
	},
}

var modelRegistry = buildModelRegistry()

func buildModelRegistry() map[string]*core.ModelInfo {
	registry := make(map[string]*core.ModelInfo, len(models))
	for i := range models {
		registry[models[i].ID] = &models[i]
	}
	return registry
}

// GetModelInfo returns the catalog entry for a model ID, or nil if unknown.
func GetModelInfo(id string) *core.ModelInfo {
	return modelRegistry[id]
}
