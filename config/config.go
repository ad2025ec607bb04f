// Package config resolves per-provider credentials, endpoints, timeouts,
// and retry limits. Resolution order is: explicit configuration supplied at
// client construction, then environment variables keyed by a fixed
// provider→variable table, then failure with a configuration error.
// Resolution is lazy: a provider's credentials are only looked up when the
// provider is first used.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/tessera/core"
)

// envVars is the fixed provider→environment-variable table.
var envVars = map[core.ProviderID]string{
	core.ProviderGroq:       "GROQ_API_KEY",
	core.ProviderTogether:   "TOGETHER_API_KEY",
	core.ProviderCerebras:   "CEREBRAS_API_KEY",
	core.ProviderHyperbolic: "HYPERBOLIC_API_KEY",
}

// EnvVar returns the environment variable that holds the API key for a
// provider, or "" for an unknown provider.
func EnvVar(p core.ProviderID) string {
	return envVars[p]
}

// Config is the serializable configuration for all providers. It is the
// in-memory equivalent of the YAML mapping accepted by Parse.
type Config struct {
	Providers       map[core.ProviderID]core.ProviderConfig
	DefaultProvider core.ProviderID
}

// FromEnv builds a Config from the environment, registering every provider
// whose API key variable is set. The first provider found (in the stable
// core.ProviderIDs order) becomes the default.
func FromEnv() *Config {
	cfg := &Config{Providers: make(map[core.ProviderID]core.ProviderConfig)}
	for _, p := range core.ProviderIDs() {
		key := os.Getenv(envVars[p])
		if key == "" {
			continue
		}
		cfg.Providers[p] = core.NewProviderConfig(key)
		if cfg.DefaultProvider == "" {
			cfg.DefaultProvider = p
		}
	}
	return cfg
}

// LoadDotEnv populates the process environment from .env files before
// environment-based resolution. With no arguments it loads "./.env".
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// fileConfig is the YAML document shape.
type fileConfig struct {
	Providers       map[string]fileProviderConfig `yaml:"providers"`
	DefaultProvider string                        `yaml:"default_provider"`
}

// fileProviderConfig is the YAML shape of one provider entry. Timeout uses
// Go duration syntax ("30s", "2m"). Unset fields take the package defaults.
type fileProviderConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Timeout    string `yaml:"timeout"`
	MaxRetries *int   `yaml:"max_retries"`
}

// Parse builds a Config from a YAML document of the form:
//
//	default_provider: groq
//	providers:
//	  groq:
//	    api_key: gsk_...
//	    timeout: 30s
//	    max_retries: 2
//
// Unknown provider names fail with a configuration error. The resulting
// Config is equivalent to one built via direct construction.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}

	cfg := &Config{Providers: make(map[core.ProviderID]core.ProviderConfig, len(fc.Providers))}
	for name, fpc := range fc.Providers {
		p := core.ProviderID(name)
		if _, known := envVars[p]; !known {
			return nil, fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, name)
		}
		pc := core.NewProviderConfig(fpc.APIKey)
		pc.BaseURL = fpc.BaseURL
		if fpc.Timeout != "" {
			d, err := time.ParseDuration(fpc.Timeout)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid timeout for provider %q: %v", core.ErrConfiguration, name, err)
			}
			pc.Timeout = d
		}
		if fpc.MaxRetries != nil {
			if *fpc.MaxRetries < 0 {
				return nil, fmt.Errorf("%w: negative max_retries for provider %q", core.ErrConfiguration, name)
			}
			pc.MaxRetries = *fpc.MaxRetries
		}
		cfg.Providers[p] = pc
	}

	if fc.DefaultProvider != "" {
		p := core.ProviderID(fc.DefaultProvider)
		if _, known := envVars[p]; !known {
			return nil, fmt.Errorf("%w: unknown default provider %q", core.ErrConfiguration, fc.DefaultProvider)
		}
		cfg.DefaultProvider = p
	}

	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}
	return Parse(data)
}
