package hyperbolic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tessera-ai/tessera/core"
)

func testConfig(baseURL string) core.ProviderConfig {
	pc := core.NewProviderConfig("hyp_test_key_long_enough_for_checks")
	pc.BaseURL = baseURL
	return pc
}

func TestCompletePassesTopP(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &payload)
		io.WriteString(w, `{"id":"r1","model":"m","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	topP := float32(0.8)
	p := New(testConfig(server.URL))
	resp, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:    ModelLlama33_70B,
		Messages: core.Prompt("hi"),
		TopP:     &topP,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if payload["top_p"] != float64(0.8) {
		t.Errorf("top_p = %v, want 0.8", payload["top_p"])
	}
	if resp.Provider != core.ProviderHyperbolic {
		t.Errorf("Provider = %q", resp.Provider)
	}
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("path = %q", r.URL.Path)
		}
		io.WriteString(w, `{"data":[
			{"id":"Qwen/Qwen2-VL-72B-Instruct"},
			{"id":"meta-llama/Llama-3.3-70B-Instruct","context_length":131072},
			{"id":"new-org/SomeVLM-7B","context_length":8192}
		]}`)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))
	models, err := p.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("got %d models", len(models))
	}

	// Catalog entry: vision flag and fallback context length come from it.
	if !models[0].SupportsVision {
		t.Error("qwen2-vl not flagged as vision-capable via the catalog")
	}
	if models[0].ContextLength != 32768 {
		t.Errorf("qwen2-vl ContextLength = %d, want catalog fallback", models[0].ContextLength)
	}

	// Unknown model: the name heuristic decides.
	if !models[2].SupportsVision {
		t.Error("vlm-named model not flagged as vision-capable")
	}
	if models[2].ContextLength != 8192 {
		t.Errorf("unknown model ContextLength = %d", models[2].ContextLength)
	}
}

func TestVisionGate(t *testing.T) {
	p := New(testConfig("http://127.0.0.1:1"))
	_, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model: ModelDeepSeekV3,
		Messages: []core.Message{{
			Role:  core.RoleUser,
			Parts: []core.ContentPart{core.ImagePart{URL: "https://example.com/a.png"}},
		}},
	})
	if !errors.Is(err, core.ErrUnsupportedFeature) {
		t.Fatalf("error = %v, want ErrUnsupportedFeature", err)
	}
}

func TestCompleteRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer server.Close()

	p := New(testConfig(server.URL))
	_, err := p.Complete(context.Background(), &core.CompletionRequest{
		Model:    ModelLlama33_70B,
		Messages: core.Prompt("hi"),
	})
	if !errors.Is(err, core.ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
}
