package hyperbolic

// hyperbolicRequest represents a request to the Hyperbolic chat completions API.
type hyperbolicRequest struct {
	Model       string              `json:"model"`
	Messages    []hyperbolicMessage `json:"messages"`
	Temperature *float32            `json:"temperature,omitempty"`
	MaxTokens   *int                `json:"max_tokens,omitempty"`
	TopP        *float32            `json:"top_p,omitempty"`
	Stream      bool                `json:"stream"`
}

// hyperbolicMessage represents a message in the Hyperbolic format. Content is
// either a plain string or an ordered list of multimodal parts.
type hyperbolicMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type hyperbolicContentPart struct {
	Type     string              `json:"type"`
	Text     string              `json:"text,omitempty"`
	ImageURL *hyperbolicImageURL `json:"image_url,omitempty"`
}

type hyperbolicImageURL struct {
	URL string `json:"url"`
}

// hyperbolicResponse represents a response from the chat completions API.
type hyperbolicResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []hyperbolicChoice `json:"choices"`
	Usage   *hyperbolicUsage   `json:"usage,omitempty"`
}

type hyperbolicChoice struct {
	Index        int               `json:"index"`
	Message      hyperbolicRespMsg `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type hyperbolicRespMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type hyperbolicUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Streaming response types for the Hyperbolic SSE protocol.

type hyperbolicStreamChunk struct {
	ID      string                   `json:"id"`
	Model   string                   `json:"model"`
	Choices []hyperbolicStreamChoice `json:"choices"`
	Usage   *hyperbolicUsage         `json:"usage,omitempty"`
}

type hyperbolicStreamChoice struct {
	Index        int                   `json:"index"`
	Delta        hyperbolicStreamDelta `json:"delta"`
	FinishReason *string               `json:"finish_reason,omitempty"`
}

type hyperbolicStreamDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Model listing types. Hyperbolic serves the bare OpenAI listing shape.

type hyperbolicModelList struct {
	Data []hyperbolicModel `json:"data"`
}

type hyperbolicModel struct {
	ID            string `json:"id"`
	ContextLength int    `json:"context_length"`
}
