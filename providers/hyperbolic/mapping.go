package hyperbolic

import (
	"fmt"

	"github.com/tessera-ai/tessera/core"
)

// checkVision fails fast when image parts target a model the catalog marks
// as not vision-capable, before any network call is issued.
func checkVision(model string, messages []core.Message) error {
	hasImage := false
	for _, m := range messages {
		if m.HasImage() {
			hasImage = true
			break
		}
	}
	if !hasImage {
		return nil
	}
	if info := GetModelInfo(model); info != nil && !info.SupportsVision {
		return fmt.Errorf("%w: model %q does not accept image input", core.ErrUnsupportedFeature, model)
	}
	return nil
}

// mapMessages converts unified messages to the Hyperbolic message format.
// Role names map 1:1; unknown roles are rejected, never coerced.
func mapMessages(msgs []core.Message) ([]hyperbolicMessage, error) {
	result := make([]hyperbolicMessage, len(msgs))
	for i, msg := range msgs {
		if !msg.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", core.ErrValidation, msg.Role)
		}
		result[i] = hyperbolicMessage{Role: string(msg.Role)}
		if len(msg.Parts) == 0 {
			result[i].Content = msg.Content
			continue
		}
		parts := make([]hyperbolicContentPart, 0, len(msg.Parts))
		for _, part := range msg.Parts {
			switch v := part.(type) {
			case core.TextPart:
				parts = append(parts, hyperbolicContentPart{Type: core.PartTypeText, Text: v.Text})
			case core.ImagePart:
				parts = append(parts, hyperbolicContentPart{
					Type:     core.PartTypeImage,
					ImageURL: &hyperbolicImageURL{URL: v.SourceURL()},
				})
			default:
				return nil, fmt.Errorf("%w: unknown content part type %q", core.ErrValidation, part.PartType())
			}
		}
		result[i].Content = parts
	}
	return result, nil
}

// buildRequest creates a Hyperbolic API request from a unified request.
// All three sampling parameters pass through unmodified.
func buildRequest(req *core.CompletionRequest, stream bool) (*hyperbolicRequest, error) {
	if err := checkVision(req.Model, req.Messages); err != nil {
		return nil, err
	}
	messages, err := mapMessages(req.Messages)
	if err != nil {
		return nil, err
	}
	return &hyperbolicRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Stream:      stream,
	}, nil
}

// mapResponse converts a Hyperbolic response to the unified ChatResponse.
func mapResponse(resp *hyperbolicResponse) *core.ChatResponse {
	result := &core.ChatResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: core.ProviderHyperbolic,
	}
	if len(resp.Choices) > 0 {
		result.Content = resp.Choices[0].Message.Content
		result.FinishReason = resp.Choices[0].FinishReason
	}
	if resp.Usage != nil {
		result.Usage = mapUsage(resp.Usage)
	}
	return result
}

func mapUsage(u *hyperbolicUsage) *core.TokenUsage {
	return &core.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

// mapModelList converts the live listing. The catalog fills in context
// lengths the listing omits; vision capability falls back to the name
// heuristic for unknown models.
func mapModelList(list *hyperbolicModelList) []core.ModelInfo {
	result := make([]core.ModelInfo, 0, len(list.Data))
	for _, m := range list.Data {
		if info := GetModelInfo(m.ID); info != nil {
			entry := *info
			if m.ContextLength > 0 {
				entry.ContextLength = m.ContextLength
			}
			result = append(result, entry)
			continue
		}
		result = append(result, core.ModelInfo{
			ID:                m.ID,
			Provider:          core.ProviderHyperbolic,
			Name:              m.ID,
			ContextLength:     m.ContextLength,
			SupportsVision:    supportsVisionByName(m.ID),
			SupportsStreaming: true,
		})
	}
	return result
}
