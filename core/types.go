package core

import "time"

// ProviderID identifies a supported completion provider.
type ProviderID string

const (
	ProviderGroq       ProviderID = "groq"
	ProviderTogether   ProviderID = "together"
	ProviderCerebras   ProviderID = "cerebras"
	ProviderHyperbolic ProviderID = "hyperbolic"
)

// ProviderIDs lists the built-in providers in a stable order.
func ProviderIDs() []ProviderID {
	return []ProviderID{ProviderGroq, ProviderTogether, ProviderCerebras, ProviderHyperbolic}
}

// Role represents a message participant role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the known chat roles.
// Adapters never coerce unknown roles; they reject them.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message represents a single message in a conversation.
// For plain text messages, set Content. For multimodal messages, set Parts.
// If Parts is non-empty, Content is ignored.
type Message struct {
	Role    Role          `json:"role"`
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"-"`
}

// ContentParts returns the message content as an ordered part sequence.
// A plain-text message normalizes to a single TextPart, so both message
// forms share one internal representation.
func (m Message) ContentParts() []ContentPart {
	if len(m.Parts) > 0 {
		return m.Parts
	}
	return []ContentPart{TextPart{Text: m.Content}}
}

// HasImage reports whether any part of the message is an image.
func (m Message) HasImage() bool {
	for _, p := range m.Parts {
		if p.PartType() == PartTypeImage {
			return true
		}
	}
	return false
}

// Empty reports whether the message carries no content at all.
func (m Message) Empty() bool {
	return m.Content == "" && len(m.Parts) == 0
}

// SystemMessage builds a system message from plain text.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage builds a user message from plain text.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage builds an assistant message from plain text.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// Prompt wraps a bare string into the canonical single-user-message sequence.
func Prompt(text string) []Message {
	return []Message{UserMessage(text)}
}

// CompletionRequest represents a unified chat completion request.
// Sampling parameters are pointers so that an unset parameter is omitted
// from the provider payload and the provider's own default applies.
type CompletionRequest struct {
	Provider    ProviderID `json:"provider"`
	Model       string     `json:"model"`
	Messages    []Message  `json:"messages"`
	Temperature *float32   `json:"temperature,omitempty"`
	MaxTokens   *int       `json:"max_tokens,omitempty"`
	TopP        *float32   `json:"top_p,omitempty"`
	Stream      bool       `json:"stream"`
}

// Validate checks the request against the unified message-model invariants.
func (r *CompletionRequest) Validate() error {
	if r.Model == "" {
		return ErrModelRequired
	}
	if len(r.Messages) == 0 {
		return ErrNoMessages
	}
	for _, msg := range r.Messages {
		if !msg.Role.Valid() {
			return validationf("unknown role %q", msg.Role)
		}
		if msg.Empty() {
			return ErrNoMessages
		}
	}
	// Adapters must not reorder messages, so the shape is enforced here.
	last := r.Messages[len(r.Messages)-1].Role
	if last != RoleUser && last != RoleAssistant {
		return validationf("last message role must be user or assistant, got %q", last)
	}
	return nil
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse represents a unified non-streaming completion result.
// For providers returning multiple choices, only the first choice is used.
// Usage is nil when the provider omits it; it is never fabricated.
type ChatResponse struct {
	ID           string      `json:"id"`
	Model        string      `json:"model"`
	Provider     ProviderID  `json:"provider"`
	Content      string      `json:"content"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// ChatChunk represents an incremental streaming response.
// Delta contains the new assistant text since the previous chunk; an empty
// delta is permitted. Concatenating deltas in emission order yields the
// final content.
type ChatChunk struct {
	Delta        string `json:"delta"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// ModelInfo describes a model available from a provider.
// ContextLength is zero when the provider does not report it.
type ModelInfo struct {
	ID                string     `json:"id"`
	Provider          ProviderID `json:"provider"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	ContextLength     int        `json:"context_length,omitempty"`
	SupportsVision    bool       `json:"supports_vision"`
	SupportsStreaming bool       `json:"supports_streaming"`
}

// ProviderConfig holds per-provider connection settings.
// A ProviderConfig is a value: once handed to an adapter it is never
// mutated, so concurrent requests can share it safely.
type ProviderConfig struct {
	APIKey     Secret        `json:"api_key"`
	BaseURL    string        `json:"base_url,omitempty"`
	Timeout    time.Duration `json:"timeout"`
	MaxRetries int           `json:"max_retries"`
}

// Defaults applied when a ProviderConfig field is unset.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// NewProviderConfig builds a ProviderConfig with the default timeout and
// retry limit.
func NewProviderConfig(apiKey string) ProviderConfig {
	return ProviderConfig{
		APIKey:     NewSecret(apiKey),
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
	}
}
