package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/tessera-ai/tessera/core"
)

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		provider core.ProviderID
		key      string
		wantErr  bool
	}{
		{"groq valid", core.ProviderGroq, "gsk_" + strings.Repeat("a", 40), false},
		{"groq wrong prefix", core.ProviderGroq, "sk_" + strings.Repeat("a", 40), true},
		{"groq too short", core.ProviderGroq, "gsk_abc", true},
		{"cerebras valid", core.ProviderCerebras, "csk-" + strings.Repeat("x", 40), false},
		{"cerebras wrong prefix", core.ProviderCerebras, "gsk_" + strings.Repeat("x", 40), true},
		{"together valid", core.ProviderTogether, strings.Repeat("ab12", 16), false},
		{"together uppercase hex", core.ProviderTogether, strings.Repeat("AB12", 16), true},
		{"together too short", core.ProviderTogether, "abcd1234", true},
		{"hyperbolic valid", core.ProviderHyperbolic, strings.Repeat("t0k.n", 8), false},
		{"hyperbolic too short", core.ProviderHyperbolic, "short", true},
		{"empty key", core.ProviderGroq, "", true},
		{"unknown provider accepts any", "custom", "anything", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPIKey(tt.provider, tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAPIKey(%q, %q) = %v, wantErr=%v", tt.provider, tt.key, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, core.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}
