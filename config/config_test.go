package config

import (
	"errors"
	"testing"
	"time"

	"github.com/tessera-ai/tessera/core"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, p := range core.ProviderIDs() {
		t.Setenv(envVars[p], "")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar(core.ProviderGroq); got != "GROQ_API_KEY" {
		t.Errorf("EnvVar(groq) = %q", got)
	}
	if got := EnvVar("unknown"); got != "" {
		t.Errorf("EnvVar(unknown) = %q, want empty", got)
	}
}

func TestFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("TOGETHER_API_KEY", "together-key")
	t.Setenv("CEREBRAS_API_KEY", "cerebras-key")

	cfg := FromEnv()
	if len(cfg.Providers) != 2 {
		t.Fatalf("FromEnv found %d providers, want 2", len(cfg.Providers))
	}
	if cfg.DefaultProvider != core.ProviderTogether {
		t.Errorf("DefaultProvider = %q, want together (first in stable order)", cfg.DefaultProvider)
	}
	pc := cfg.Providers[core.ProviderTogether]
	if pc.APIKey.Expose() != "together-key" {
		t.Errorf("together key = %q", pc.APIKey.Expose())
	}
	if pc.Timeout != core.DefaultTimeout || pc.MaxRetries != core.DefaultMaxRetries {
		t.Errorf("env-derived config missing defaults: %+v", pc)
	}
}

func TestFromEnvEmpty(t *testing.T) {
	clearProviderEnv(t)
	cfg := FromEnv()
	if len(cfg.Providers) != 0 {
		t.Errorf("FromEnv found %d providers in empty env", len(cfg.Providers))
	}
	if cfg.DefaultProvider != "" {
		t.Errorf("DefaultProvider = %q, want empty", cfg.DefaultProvider)
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
default_provider: groq
providers:
  groq:
    api_key: gsk_test
    timeout: 10s
    max_retries: 1
  together:
    api_key: tk_test
    base_url: https://example.com/v1
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.DefaultProvider != core.ProviderGroq {
		t.Errorf("DefaultProvider = %q", cfg.DefaultProvider)
	}

	groq := cfg.Providers[core.ProviderGroq]
	if groq.Timeout != 10*time.Second {
		t.Errorf("groq timeout = %v", groq.Timeout)
	}
	if groq.MaxRetries != 1 {
		t.Errorf("groq max_retries = %d", groq.MaxRetries)
	}

	together := cfg.Providers[core.ProviderTogether]
	if together.BaseURL != "https://example.com/v1" {
		t.Errorf("together base_url = %q", together.BaseURL)
	}
	if together.Timeout != core.DefaultTimeout {
		t.Errorf("unset timeout = %v, want default", together.Timeout)
	}
	if together.MaxRetries != core.DefaultMaxRetries {
		t.Errorf("unset max_retries = %d, want default", together.MaxRetries)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown provider", "providers:\n  openai:\n    api_key: sk_test\n"},
		{"unknown default", "default_provider: openai\n"},
		{"bad timeout", "providers:\n  groq:\n    api_key: k\n    timeout: soon\n"},
		{"negative retries", "providers:\n  groq:\n    api_key: k\n    max_retries: -1\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse accepted bad input")
			}
			if !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("error = %v, want ErrConfiguration", err)
			}
		})
	}
}
