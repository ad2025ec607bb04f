package slogtel

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tessera-ai/tessera/core"
)

func TestHookLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hook := New(logger)

	start := time.Now()
	hook.OnRequestStart(core.RequestStartEvent{
		Provider: core.ProviderGroq,
		Model:    "llama-3.3-70b-versatile",
		Start:    start,
	})
	hook.OnRequestEnd(core.RequestEndEvent{
		Provider: core.ProviderGroq,
		Model:    "llama-3.3-70b-versatile",
		Start:    start,
		End:      start.Add(120 * time.Millisecond),
		Attempts: 2,
		Usage:    &core.TokenUsage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7},
	})

	out := buf.String()
	for _, want := range []string{
		"llm request start",
		"llm request done",
		"provider=groq",
		"attempts=2",
		"total_tokens=7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestHookLogsFailureAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	hook := New(logger)

	hook.OnRequestEnd(core.RequestEndEvent{
		Provider: core.ProviderTogether,
		Model:    "m",
		Start:    time.Now(),
		End:      time.Now(),
		Attempts: 1,
		Err:      errors.New("boom"),
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("failure not logged at warn:\n%s", out)
	}
	if !strings.Contains(out, "llm request failed") {
		t.Errorf("missing failure message:\n%s", out)
	}
}
