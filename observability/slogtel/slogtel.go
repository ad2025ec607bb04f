// Package slogtel provides a log/slog implementation of the telemetry hook.
// Events carry only operational metadata (provider, model, timing, token
// counts), never credentials or message content.
package slogtel

import (
	"context"
	"log/slog"

	"github.com/tessera-ai/tessera/core"
)

// Hook logs request lifecycle events through a slog.Logger.
type Hook struct {
	logger *slog.Logger
}

// New creates a Hook backed by the given logger. A nil logger uses
// slog.Default().
func New(logger *slog.Logger) *Hook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hook{logger: logger}
}

// OnRequestStart logs the start of a request at debug level.
func (h *Hook) OnRequestStart(e core.RequestStartEvent) {
	h.logger.Debug("llm request start",
		slog.String("provider", string(e.Provider)),
		slog.String("model", e.Model),
		slog.Bool("stream", e.Stream),
	)
}

// OnRequestEnd logs the outcome of a request. Failures log at warn level
// with the normalized error; successes log at info level with token usage
// when the provider reported it.
func (h *Hook) OnRequestEnd(e core.RequestEndEvent) {
	attrs := []slog.Attr{
		slog.String("provider", string(e.Provider)),
		slog.String("model", e.Model),
		slog.Bool("stream", e.Stream),
		slog.Duration("duration", e.Duration()),
		slog.Int("attempts", e.Attempts),
	}
	if e.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", e.Usage.PromptTokens),
			slog.Int("completion_tokens", e.Usage.CompletionTokens),
			slog.Int("total_tokens", e.Usage.TotalTokens),
		)
	}

	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
		h.logger.LogAttrs(context.Background(), slog.LevelWarn, "llm request failed", attrs...)
		return
	}
	h.logger.LogAttrs(context.Background(), slog.LevelInfo, "llm request done", attrs...)
}

var _ core.TelemetryHook = (*Hook)(nil)
