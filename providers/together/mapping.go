package together

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

// mapMessages converts unified messages to the Together message format.
// Role names map 1:1; unknown roles are rejected, never coerced.
func mapMessages(msgs []core.Message) ([]togetherMessage, error) {
	result := make([]togetherMessage, len(msgs))
	for i, msg := range msgs {
		if !msg.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", core.ErrValidation, msg.Role)
		}
		result[i] = togetherMessage{Role: string(msg.Role)}
		if len(msg.Parts) == 0 {
			result[i].Content = msg.Content
			continue
		}
		parts := make([]togetherContentPart, 0, len(msg.Parts))
		for _, part := range msg.Parts {
			switch v := part.(type) {
			case core.TextPart:
				parts = append(parts, togetherContentPart{Type: core.PartTypeText, Text: v.Text})
			case core.ImagePart:
				parts = append(parts, togetherContentPart{
					Type:     core.PartTypeImage,
					ImageURL: &togetherImageURL{URL: v.SourceURL()},
				})
			default:
				return nil, fmt.Errorf("%w: unknown content part type %q", core.ErrValidation, part.PartType())
			}
		}
		result[i].Content = parts
	}
	return result, nil
}

// buildRequest creates a Together API request from a unified request.
// All three sampling parameters pass through unmodified.
func buildRequest(req *core.CompletionRequest, stream bool) (*togetherRequest, error) {
	if err := checkVision(req.Model, req.Messages); err != nil {
		return nil, err
	}
	messages, err := mapMessages(req.Messages)
	if err != nil {
		return nil, err
	}
	return &togetherRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        req.TopP,
		Stream:      stream,
	}, nil
}

// mapResponse converts a Together response to the unified ChatResponse.
func mapResponse(resp *togetherResponse) *core.ChatResponse {
	result := &core.ChatResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: core.ProviderTogether,
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

func mapUsage(u *togetherUsage) *core.TokenUsage {
	return &core.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

// mapModelList converts the live listing, preferring the provider's display
// name and falling back to the name heuristic for vision capability.
func mapModelList(list *togetherModelList) []core.ModelInfo {
	result := make([]core.ModelInfo, 0, len(list.Data))
	for _, m := range list.Data {
		name := m.DisplayName
		if name == "" {
			name = m.ID
		}
		result = append(result, core.ModelInfo{
			ID:                m.ID,
			Provider:          core.ProviderTogether,
			Name:              name,
			Description:       m.Description,
			ContextLength:     m.ContextLength,
			SupportsVision:    supportsVisionByName(m.ID),
			SupportsStreaming: true,
		})
	}
	return result
}
