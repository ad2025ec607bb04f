// Package groq provides the Groq provider adapter for Tessera.
package groq

import (
	"strings"

	"github.com/tessera-ai/tessera/core"
)

// Model constants for commonly used Groq models.
const (
	ModelLlama33_70BVersatile = "llama-3.3-70b-versatile"
	ModelLlama31_8BInstant    = "llama-3.1-8b-instant"
	ModelLlama4Scout          = "meta-llama/llama-4-scout-17b-16e-instruct"
	ModelLlama4Maverick       = "meta-llama/llama-4-maverick-17b-128e-instruct"
	ModelGPTOSS120B           = "openai/gpt-oss-120b"
)

// models is the static catalog used for capability checks before any
// network call. The live listing from the API supersedes it for discovery.
var models = []core.ModelInfo{
	{
		ID:                ModelLlama33_70BVersatile,
		Provider:          core.ProviderGroq,
		Name:              "Llama 3.3 70B Versatile",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama31_8BInstant,
		Provider:          core.ProviderGroq,
		Name:              "Llama 3.1 8B Instant",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama4Scout,
		Provider:          core.ProviderGroq,
		Name:              "Llama 4 Scout",
		ContextLength:     131072,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama4Maverick,
		Provider:          core.ProviderGroq,
		Name:              "Llama 4 Maverick",
		ContextLength:     131072,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelGPTOSS120B,
		Provider:          core.ProviderGroq,
		Name:              "GPT OSS 120B",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
}

// modelRegistry is a map for quick model lookup by ID.
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

// visionPatterns flags vision-capable models in the live listing by name.
var visionPatterns = []string{"vision", "vlm", "llava", "scout", "llama-4"}

// supportsVisionByName applies the model-name heuristic used when the live
// listing carries no capability metadata.
func supportsVisionByName(id string) bool {
	lower := strings.ToLower(id)
	for _, p := range visionPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
