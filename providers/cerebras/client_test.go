package cerebras

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tessera-ai/tessera/core"
)

func testConfig(baseURL string) core.ProviderConfig {
	pc := core.NewProviderConfig("csk-test")
	pc.BaseURL = baseURL
	return pc
}

func TestListModelsIsStatic(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))
	models, err := p.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if calls.Load() != 0 {
		t.Error("static listing made a network call")
	}
	if len(models) == 0 {
		t.Fatal("empty catalog")
	}

	byID := make(map[string]core.ModelInfo, len(models))
	for _, m := range models {
		if m.Provider != core.ProviderCerebras {
			t.Errorf("model %q has provider %q", m.ID, m.Provider)
		}
		byID[m.ID] = m
	}
	if !byID[ModelLlama4Scout].SupportsVision {
		t.Error("scout not flagged as vision-capable")
	}
	if !byID[ModelLlama4Maverick].SupportsVision {
		t.Error("maverick not flagged as vision-capable")
	}
	if byID[ModelLlama31_8B].SupportsVision {
		t.Error("llama3.1-8b flagged as vision-capable")
	}
}

func TestCompleteOmitsTopP(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		io.WriteString(w, `{"id":"r1","model":"llama3.1-8b","choices":[{"index":0,"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":2,"total_tokens":3}}`)
	}))
	defer server.Close()

	topP := float32(0.7)
	p := New(testConfig(server.URL))
	resp, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:    ModelLlama31_8B,
		Messages: core.Prompt("hi"),
		TopP:     &topP,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, present := payload["top_p"]; present {
		t.Error("request payload contains top_p; it must be omitted")
	}
	if resp.Content != "hello" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 3 {
		t.Errorf("Usage = %+v", resp.Usage)
	}
}

func TestVisionGate(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))
	_, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model: ModelLlama31_8B,
		Messages: []core.Message{{
			Role:  core.RoleUser,
			Parts: []core.ContentPart{core.ImagePart{URL: "https://example.com/a.png"}},
		}},
	})
	if !errors.Is(err, core.ErrUnsupportedFeature) {
		t.Fatalf("error = %v, want ErrUnsupportedFeature", err)
	}
	if calls.Load() != 0 {
		t.Error("gate fired after the network call")
	}
}

func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":{"message":"internal"}}`)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))
	_, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:    ModelLlama31_8B,
		Messages: core.Prompt("hi"),
	})
	if !errors.Is(err, core.ErrProviderFailure) {
		t.Fatalf("error = %v, want ErrProviderFailure", err)
	}
}
