package groq

import (
	"fmt"

	"github.com/tessera-ai/tessera/core"
)

// checkVision fails fast when image parts target a model the catalog marks
// as not vision-capable, before any network call is issued. Models absent
// from the catalog are passed through for the provider to judge.
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

// mapMessages converts unified messages to the Groq message format. Role
// names map 1:1; unknown roles are rejected, never coerced.
func mapMessages(msgs []core.Message) ([]groqMessage, error) {
	result := make([]groqMessage, len(msgs))
	for i, msg := range msgs {
		if !msg.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", core.ErrValidation, msg.Role)
		}
		result[i] = groqMessage{Role: string(msg.Role)}
		if len(msg.Parts) == 0 {
			result[i].Content = msg.Content
			continue
		}
		parts := make([]groqContentPart, 0, len(msg.Parts))
		for _, part := range msg.Parts {
			switch v := part.(type) {
			case core.TextPart:
				parts = append(parts, groqContentPart{Type: core.PartTypeText, Text: v.Text})
			case core.ImagePart:
				parts = append(parts, groqContentPart{
					Type:     core.PartTypeImage,
					ImageURL: &groqImageURL{URL: v.SourceURL()},
				})
			default:
				return nil, fmt.Errorf("%w: unknown content part type %q", core.ErrValidation, part.PartType())
			}
		}
		result[i].Content = parts
	}
	return result, nil
}

// buildRequest creates a Groq API request from a unified request.
// Temperature and max_tokens pass through unmodified; top_p is not
// forwarded to Groq.
func buildRequest(req *core.CompletionRequest, stream bool) (*groqRequest, error) {
	if err := checkVision(req.Model, req.Messages); err != nil {
		return nil, err
	}
	messages, err := mapMessages(req.Messages)
	if err != nil {
		return nil, err
	}
	return &groqRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}, nil
}

// mapResponse converts a Groq response to the unified ChatResponse.
// Usage stays nil when the provider omitted it.
func mapResponse(resp *groqResponse) *core.ChatResponse {
	result := &core.ChatResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Provider: core.ProviderGroq,
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

// mapUsage converts Groq usage counters.
func mapUsage(u *groqUsage) *core.TokenUsage {
	return &core.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

// mapModelList converts the live listing, annotating vision capability by
// model-name heuristic since Groq's listing carries no capability metadata.
func mapModelList(list *groqModelList) []core.ModelInfo {
	result := make([]core.ModelInfo, 0, len(list.Data))
	for _, m := range list.Data {
		result = append(result, core.ModelInfo{
			ID:                m.ID,
			Provider:          core.ProviderGroq,
			Name:              m.ID,
			ContextLength:     m.ContextWindow,
			SupportsVision:    supportsVisionByName(m.ID),
			SupportsStreaming: true,
		})
	}
	return result
}
