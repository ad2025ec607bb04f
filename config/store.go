package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/tessera-ai/tessera/core"
)

// Store is the process-shared provider configuration registry. Reads and
// writes are safe for concurrent use: Add replaces an entry atomically, so
// concurrent readers observe either the old or the new config, never a
// partially written one. Requests already dispatched keep the config they
// resolved.
type Store struct {
	mu        sync.RWMutex
	providers map[core.ProviderID]core.ProviderConfig
	order     []core.ProviderID
	def       core.ProviderID
}

// NewStore builds a Store from a Config. A nil Config yields an empty store
// that resolves providers lazily from the environment.
func NewStore(cfg *Config) *Store {
	s := &Store{providers: make(map[core.ProviderID]core.ProviderConfig)}
	if cfg == nil {
		return s
	}
	// Register in the stable provider order so fan-out results are
	// deterministic regardless of map iteration.
	for _, p := range core.ProviderIDs() {
		if pc, ok := cfg.Providers[p]; ok {
			s.providers[p] = pc
			s.order = append(s.order, p)
		}
	}
	s.def = cfg.DefaultProvider
	if s.def == "" && len(s.order) > 0 {
		s.def = s.order[0]
	}
	return s
}

// Resolve returns the configuration for a provider. Explicit configuration
// wins; otherwise the provider's environment variable is consulted and the
// result cached. A provider with neither fails with a configuration error.
func (s *Store) Resolve(p core.ProviderID) (core.ProviderConfig, error) {
	s.mu.RLock()
	pc, ok := s.providers[p]
	s.mu.RUnlock()
	if ok {
		return pc, nil
	}

	envVar, known := envVars[p]
	if !known {
		return core.ProviderConfig{}, fmt.Errorf("%w: unknown provider %q", core.ErrConfiguration, p)
	}
	key := os.Getenv(envVar)
	if key == "" {
		return core.ProviderConfig{}, fmt.Errorf("%w: missing credential for provider %q (set %s)",
			core.ErrConfiguration, p, envVar)
	}

	pc = core.NewProviderConfig(key)
	s.mu.Lock()
	// Another goroutine may have resolved or Added concurrently; keep the
	// entry that got there first so readers stay consistent.
	if existing, ok := s.providers[p]; ok {
		pc = existing
	} else {
		s.providers[p] = pc
		s.order = append(s.order, p)
		if s.def == "" {
			s.def = p
		}
	}
	s.mu.Unlock()
	return pc, nil
}

// Add registers or replaces a provider's configuration atomically. The
// first provider added to an empty store becomes the default.
func (s *Store) Add(p core.ProviderID, pc core.ProviderConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.providers[p]; !exists {
		s.order = append(s.order, p)
	}
	s.providers[p] = pc
	if s.def == "" {
		s.def = p
	}
}

// Has reports whether the provider is currently configured.
func (s *Store) Has(p core.ProviderID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.providers[p]
	return ok
}

// Providers returns the configured providers in registration order.
func (s *Store) Providers() []core.ProviderID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ProviderID, len(s.order))
	copy(out, s.order)
	return out
}

// Default returns the default provider, or "" when none is configured.
func (s *Store) Default() core.ProviderID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}
