package core

import "time"

// TelemetryHook receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, or tracing.
//
// Event types never include sensitive data: no API keys, no prompt content,
// no response content. Only operational metadata is exposed (provider,
// model, timing, token counts), so telemetry can be logged or shipped to
// monitoring systems safely. Keep it that way when extending them.
type TelemetryHook interface {
	// OnRequestStart is called when a request to a provider begins.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request to a provider completes.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Provider ProviderID
	Model    string
	Stream   bool
	Start    time.Time
}

// RequestEndEvent contains metadata about a completed request.
type RequestEndEvent struct {
	Provider ProviderID
	Model    string
	Stream   bool
	Start    time.Time
	End      time.Time
	Attempts int         // dispatch attempts, including retries
	Usage    *TokenUsage // nil when the provider reported none
	Err      error       // nil on success
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// Used as the default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

var _ TelemetryHook = NoopTelemetryHook{}
