package core

import (
	"errors"
	"testing"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant} {
		if !r.Valid() {
			t.Errorf("Role(%q).Valid() = false, want true", r)
		}
	}
	for _, r := range []Role{"", "tool", "function", "USER"} {
		if r.Valid() {
			t.Errorf("Role(%q).Valid() = true, want false", r)
		}
	}
}

func TestMessageContentParts(t *testing.T) {
	plain := UserMessage("hello")
	parts := plain.ContentParts()
	if len(parts) != 1 {
		t.Fatalf("ContentParts() returned %d parts, want 1", len(parts))
	}
	tp, ok := parts[0].(TextPart)
	if !ok {
		t.Fatalf("ContentParts()[0] = %T, want TextPart", parts[0])
	}
	if tp.Text != "hello" {
		t.Errorf("TextPart.Text = %q, want %q", tp.Text, "hello")
	}

	multi := Message{
		Role: RoleUser,
		Parts: []ContentPart{
			TextPart{Text: "describe this"},
			ImagePart{URL: "https://example.com/cat.png"},
		},
	}
	if got := multi.ContentParts(); len(got) != 2 {
		t.Errorf("ContentParts() returned %d parts, want 2", len(got))
	}
}

func TestMessageHasImage(t *testing.T) {
	if UserMessage("text only").HasImage() {
		t.Error("plain text message reports HasImage")
	}
	msg := Message{
		Role:  RoleUser,
		Parts: []ContentPart{TextPart{Text: "look"}, ImagePart{URL: "https://example.com/a.png"}},
	}
	if !msg.HasImage() {
		t.Error("message with ImagePart does not report HasImage")
	}
}

func TestPrompt(t *testing.T) {
	msgs := Prompt("why is the sky blue?")
	if len(msgs) != 1 {
		t.Fatalf("Prompt returned %d messages, want 1", len(msgs))
	}
	if msgs[0].Role != RoleUser {
		t.Errorf("Prompt role = %q, want %q", msgs[0].Role, RoleUser)
	}
	if msgs[0].Content != "why is the sky blue?" {
		t.Errorf("Prompt content = %q", msgs[0].Content)
	}
}

func TestCompletionRequestValidate(t *testing.T) {
	valid := func() *CompletionRequest {
		return &CompletionRequest{
			Model:    "test-model",
			Messages: Prompt("hi"),
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CompletionRequest)
	}{
		{"missing model", func(r *CompletionRequest) { r.Model = "" }},
		{"no messages", func(r *CompletionRequest) { r.Messages = nil }},
		{"unknown role", func(r *CompletionRequest) { r.Messages[0].Role = "tool" }},
		{"empty message", func(r *CompletionRequest) { r.Messages[0].Content = "" }},
		{"last message is system", func(r *CompletionRequest) {
			r.Messages = []Message{UserMessage("hi"), SystemMessage("be nice")}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}

	// A conversation ending on an assistant turn is a legal continuation.
	cont := &CompletionRequest{
		Model:    "test-model",
		Messages: []Message{UserMessage("hi"), AssistantMessage("hello")},
	}
	if err := cont.Validate(); err != nil {
		t.Errorf("assistant-final request failed validation: %v", err)
	}
}

func TestNewProviderConfigDefaults(t *testing.T) {
	pc := NewProviderConfig("key")
	if pc.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", pc.Timeout, DefaultTimeout)
	}
	if pc.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", pc.MaxRetries, DefaultMaxRetries)
	}
	if pc.APIKey.Expose() != "key" {
		t.Errorf("APIKey = %q, want %q", pc.APIKey.Expose(), "key")
	}
}
