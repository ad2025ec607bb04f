package groq

// groqRequest represents a request to the Groq chat completions API.
// Groq's completion endpoint takes no top_p from this adapter; the
// parameter is omitted so the provider default applies.
type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream"`
}

// groqMessage represents a message in the Groq format. Content is either a
// plain string or an ordered list of multimodal parts.
type groqMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// groqContentPart is one multimodal content element.
type groqContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *groqImageURL `json:"image_url,omitempty"`
}

// groqImageURL wraps an image reference.
type groqImageURL struct {
	URL string `json:"url"`
}

// groqResponse represents a response from the Groq chat completions API.
type groqResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []groqChoice `json:"choices"`
	Usage   *groqUsage   `json:"usage,omitempty"`
}

// groqChoice represents a single choice in a Groq response.
type groqChoice struct {
	Index        int         `json:"index"`
	Message      groqRespMsg `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// groqRespMsg represents the assistant message in a response.
type groqRespMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// groqUsage represents token usage in a Groq response.
type groqUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Streaming response types for the Groq SSE protocol.

// groqStreamChunk represents a single chunk in a streaming response.
type groqStreamChunk struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []groqStreamChoice `json:"choices"`
	Usage   *groqUsage         `json:"usage,omitempty"`
	XGroq   *groqStreamTrailer `json:"x_groq,omitempty"`
}

// groqStreamTrailer carries usage delivered in Groq's stream trailer.
type groqStreamTrailer struct {
	Usage *groqUsage `json:"usage,omitempty"`
}

// groqStreamChoice represents a single choice in a streaming chunk.
type groqStreamChoice struct {
	Index        int             `json:"index"`
	Delta        groqStreamDelta `json:"delta"`
	FinishReason *string         `json:"finish_reason,omitempty"`
}

// groqStreamDelta represents the delta content in a streaming chunk.
type groqStreamDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// Model listing types.

// groqModelList represents the GET /models response.
type groqModelList struct {
	Data []groqModel `json:"data"`
}

// groqModel represents one model entry in the listing.
type groqModel struct {
	ID            string `json:"id"`
	OwnedBy       string `json:"owned_by"`
	ContextWindow int    `json:"context_window"`
}
