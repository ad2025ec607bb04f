package cerebras

// cerebrasRequest represents a request to the Cerebras chat completions API.
// TopP is deliberately absent: the Cerebras path does not forward it, and
// unsupported sampling parameters are omitted rather than errored.
type cerebrasRequest struct {
	Model       string            `json:"model"`
	Messages    []cerebrasMessage `json:"messages"`
	Temperature *float32          `json:"temperature,omitempty"`
	MaxTokens   *int              `json:"max_tokens,omitempty"`
	Stream      bool              `json:"stream"`
}

// cerebrasMessage represents a message in the Cerebras format. Content is
// either a plain string or an ordered list of multimodal parts.
type cerebrasMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type cerebrasContentPart struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	ImageURL *cerebrasImageURL `json:"image_url,omitempty"`
}

type cerebrasImageURL struct {
	URL string `json:"url"`
}

// cerebrasResponse represents a response from the chat completions API.
type cerebrasResponse struct {
	ID      string           `json:"id"`
	Model   string           `json:"model"`
	Choices []cerebrasChoice `json:"choices"`
	Usage   *cerebrasUsage   `json:"usage,omitempty"`
}

type cerebrasChoice struct {
	Index        int             `json:"index"`
	Message      cerebrasRespMsg `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type cerebrasRespMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cerebrasUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Streaming response types for the Cerebras SSE protocol.

type cerebrasStreamChunk struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []cerebrasStreamChoice `json:"choices"`
	Usage   *cerebrasUsage         `json:"usage,omitempty"`
}

type cerebrasStreamChoice struct {
	Index        int                 `json:"index"`
	Delta        cerebrasStreamDelta `json:"delta"`
	FinishReason *string             `json:"finish_reason,omitempty"`
}

type cerebrasStreamDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}
