// Package together provides the Together AI provider adapter for Tessera.
package together

import (
	"strings"

	"github.com/tessera-ai/tessera/core"
)

// Model constants for commonly used Together AI models.
const (
	ModelLlama33_70BTurbo = "meta-llama/Llama-3.3-70B-Instruct-Turbo"
	ModelLlama31_8BTurbo  = "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo"
	ModelLlama4Maverick   = "meta-llama/Llama-4-Maverick-17B-128E-Instruct-FP8"
	ModelQwen25_72BTurbo  = "Qwen/Qwen2.5-72B-Instruct-Turbo"
	ModelQwen2VL72B       = "Qwen/Qwen2-VL-72B-Instruct"
)

// models is the static catalog used for capability checks before any
// network call.
var models = []core.ModelInfo{
	{
		ID:                ModelLlama33_70BTurbo,
		Provider:          core.ProviderTogether,
		Name:              "Llama 3.3 70B Instruct Turbo",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama31_8BTurbo,
		Provider:          core.ProviderTogether,
		Name:              "Llama 3.1 8B Instruct Turbo",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama4Maverick,
		Provider:          core.ProviderTogether,
		Name:              "Llama 4 Maverick",
		ContextLength:     1048576,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen25_72BTurbo,
		Provider:          core.ProviderTogether,
		Name:              "Qwen 2.5 72B Instruct Turbo",
		ContextLength:     32768,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen2VL72B,
		Provider:          core.ProviderTogether,
		Name:              "Qwen2-VL 72B Instruct",
		ContextLength:     32768,
		SupportsVision:    true,
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

// visionPatterns flags vision-capable models in the live listing by name.
var visionPatterns = []string{"vision", "vlm", "llava", "pixtral", "qwen2-vl", "llama-4", "maverick"}

func supportsVisionByName(id string) bool {
	lower := strings.ToLower(id)
	for _, p := range visionPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
