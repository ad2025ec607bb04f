package config

import (
	"fmt"
	"regexp"

	"github.com/tessera-ai/tessera/core"
)

// keyPatterns holds known API key formats per provider. These are
// heuristics for catching pasted-in-the-wrong-slot mistakes early, not a
// substitute for the provider's own authentication.
var keyPatterns = map[core.ProviderID]*regexp.Regexp{
	core.ProviderGroq:       regexp.MustCompile(`^gsk_[a-zA-Z0-9]{32,}$`),
	core.ProviderCerebras:   regexp.MustCompile(`^csk-[a-zA-Z0-9_-]{32,}$`),
	core.ProviderTogether:   regexp.MustCompile(`^[a-f0-9]{64}$`),
	core.ProviderHyperbolic: regexp.MustCompile(`^[a-zA-Z0-9_.-]{32,}$`),
}

// ValidateAPIKey checks an API key against the provider's known key format.
// Providers without a known pattern accept any non-empty key.
func ValidateAPIKey(p core.ProviderID, key string) error {
	if key == "" {
		return fmt.Errorf("%w: API key must be a non-empty string", core.ErrValidation)
	}
	if pattern, ok := keyPatterns[p]; ok && !pattern.MatchString(key) {
		return fmt.Errorf("%w: malformed API key for provider %q", core.ErrValidation, p)
	}
	return nil
}
