package together

// togetherRequest represents a request to the Together chat completions API.
type togetherRequest struct {
	Model       string            `json:"model"`
	Messages    []togetherMessage `json:"messages"`
	Temperature *float32          `json:"temperature,omitempty"`
	MaxTokens   *int              `json:"max_tokens,omitempty"`
	TopP        *float32          `json:"top_p,omitempty"`
	Stream      bool              `json:"stream"`
}

// togetherMessage represents a message in the Together format. Content is
// either a plain string or an ordered list of multimodal parts.
type togetherMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type togetherContentPart struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	ImageURL *togetherImageURL `json:"image_url,omitempty"`
}

type togetherImageURL struct {
	URL string `json:"url"`
}

// togetherResponse represents a response from the chat completions API.
type togetherResponse struct {
	ID      string           `json:"id"`
	Model   string           `json:"model"`
	Choices []togetherChoice `json:"choices"`
	Usage   *togetherUsage   `json:"usage,omitempty"`
}

type togetherChoice struct {
	Index        int             `json:"index"`
	Message      togetherRespMsg `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type togetherRespMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type togetherUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Streaming response types for the Together SSE protocol.

type togetherStreamChunk struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []togetherStreamChoice `json:"choices"`
	Usage   *togetherUsage         `json:"usage,omitempty"`
}

type togetherStreamChoice struct {
	Index        int                 `json:"index"`
	Delta        togetherStreamDelta `json:"delta"`
	FinishReason *string             `json:"finish_reason,omitempty"`
}

type togetherStreamDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Model listing types. Together's listing carries richer metadata than the
// bare OpenAI shape.

type togetherModelList struct {
	Data []togetherModel `json:"data"`
}

type togetherModel struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	ContextLength int    `json:"context_length"`
}
