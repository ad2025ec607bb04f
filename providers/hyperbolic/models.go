// Package hyperbolic provides the Hyperbolic provider adapter for Tessera.
package hyperbolic

import (
	"strings"

	"github.com/tessera-ai/tessera/core"
)

// Model constants for commonly used Hyperbolic models.
const (
	ModelLlama33_70B = "meta-llama/Llama-3.3-70B-Instruct"
	ModelLlama31_8B  = "meta-llama/Meta-Llama-3.1-8B-Instruct"
	ModelQwen2VL72B  = "Qwen/Qwen2-VL-72B-Instruct"
	ModelQwen25_72B  = "Qwen/Qwen2.5-72B-Instruct"
	ModelDeepSeekV3  = "deepseek-ai/DeepSeek-V3"
)

// models is the static catalog used for capability checks before any
// network call.
var models = []core.ModelInfo{
	{
		ID:                ModelLlama33_70B,
		Provider:          core.ProviderHyperbolic,
		Name:              "Llama 3.3 70B Instruct",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelLlama31_8B,
		Provider:          core.ProviderHyperbolic,
		Name:              "Llama 3.1 8B Instruct",
		ContextLength:     131072,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen2VL72B,
		Provider:          core.ProviderHyperbolic,
		Name:              "Qwen2-VL 72B Instruct",
		ContextLength:     32768,
		SupportsVision:    true,
		SupportsStreaming: true,
	},
	{
		ID:                ModelQwen25_72B,
		Provider:          core.ProviderHyperbolic,
		Name:              "Qwen 2.5 72B Instruct",
		ContextLength:     32768,
		SupportsStreaming: true,
	},
	{
		ID:                ModelDeepSeekV3,
		Provider:          core.ProviderHyperbolic,
		Name:              "DeepSeek V3",
		ContextLength:     131072,
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
var visionPatterns = []string{"vision", "vlm"}

func supportsVisionByName(id string) bool {
	lower := strings.ToLower(id)
	for _, p := range visionPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
