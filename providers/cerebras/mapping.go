package cerebras

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

// mapMessages converts unified messages to the Cerebras message format.
// Role names map 1:1; unknown roles are rejected, never coerced.
func mapMessages(msgs []core.Message) ([]cerebrasMessage, error) {
	result := make([]cerebrasMessage, len(msgs))
	for i, msg := range msgs {
		if !msg.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", core.ErrValidation, msg.Role)
		}
		result[i] = cerebrasMessage{Role: string(msg.Role)}
		if len(msg.Parts) == 0 {
			result[i].Content = msg.Content
			continue
		}
		parts := make([]cerebrasContentPart, 0, len(msg.Parts))
		for _, part := range msg.Parts {
			switch v := part.(type) {
			case core.TextPart:
				parts = append(parts, cerebrasContentPart{Type: core.PartTypeText, Text: v.Text})
			case core.ImagePart:
				parts = append(parts, cerebrasContentPart{
					Type:     core.PartTypeImage,
					ImageURL: &cerebrasImageURL{URL: v.SourceURL()},
				})
			default:
				return nil, fmt.Errorf("%w: unknown content part type %q", core.ErrValidation, part.PartType())
			}
		}
		result[i].Content = parts
	}
	return result, nil
}

// buildRequest creates a Cerebras API request from a unified request.
// TopP is dropped: Cerebras does not accept it on this path.
func buildRequest(req *core.CompletionRequest, stream bool) (*cerebrasRequest, error) {
	if err := checkVision(req.Model, req.Messages); err != nil {
		return nil, err
	}
	messages, err := mapMessages(req.Messages)
	if err != nil {
		return nil, err
	}
	return &cerebrasRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}, nil
}

// mapResponse converts a Cerebras response to the unified ChatResponse.
func mapResponse(resp *cerebrasResponse) *core.ChatResponse {
	result := &core.ChatResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: core.ProviderCerebras,
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

func mapUsage(u *cerebrasUsage) *core.TokenUsage {
	return &core.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}
