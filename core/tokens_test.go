package core

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 1 {
		t.Errorf("EstimateTokens(\"\") = %d, want 1", got)
	}
	if got := EstimateTokens("ab"); got != 1 {
		t.Errorf("EstimateTokens(short) = %d, want 1", got)
	}
	if got := EstimateTokens(strings.Repeat("a", 400)); got != 100 {
		t.Errorf("EstimateTokens(400 chars) = %d, want 100", got)
	}
}

func TestTruncateMessages(t *testing.T) {
	msgs := []Message{
		SystemMessage(strings.Repeat("a", 400)),  // ~100 tokens
		UserMessage(strings.Repeat("b", 400)),    // ~100 tokens
		AssistantMessage(strings.Repeat("c", 400)), // ~100 tokens
		UserMessage(strings.Repeat("d", 40)),     // ~10 tokens
	}

	// Everything fits.
	if got := TruncateMessages(msgs, 1000); len(got) != 4 {
		t.Errorf("generous budget kept %d messages, want 4", len(got))
	}

	// Only the last two fit.
	got := TruncateMessages(msgs, 120)
	if len(got) != 2 {
		t.Fatalf("tight budget kept %d messages, want 2", len(got))
	}
	if got[0].Role != RoleAssistant || got[1].Role != RoleUser {
		t.Errorf("kept wrong messages: %v, %v", got[0].Role, got[1].Role)
	}

	// The last message always wins over older context.
	got = TruncateMessages(msgs, 50)
	if len(got) != 1 {
		t.Fatalf("minimal budget kept %d messages, want 1", len(got))
	}
	if got[0].Content != msgs[3].Content {
		t.Error("minimal budget did not keep the most recent message")
	}

	if got := TruncateMessages(nil, 100); len(got) != 0 {
		t.Errorf("nil input returned %d messages", len(got))
	}
}
