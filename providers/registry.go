package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tessera-ai/tessera/core"
)

// Factory creates a provider adapter bound to the given configuration.
type Factory func(cfg core.ProviderConfig) core.Provider

// registry holds registered adapter factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[core.ProviderID]Factory)
)

// Register adds an adapter factory to the registry. It is typically called
// from an adapter package's init() function. Registering the same provider
// twice overwrites the earlier factory.
//
// Example usage in an adapter package:
//
//	func init() {
//	    providers.Register(core.ProviderGroq, func(cfg core.ProviderConfig) core.Provider {
//	        return New(cfg)
//	    })
//	}
func Register(id core.ProviderID, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[id] = factory
}

// Get retrieves an adapter factory by provider ID.
// Returns nil if no adapter is registered.
func Get(id core.ProviderID) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[id]
}

// Create instantiates an adapter for the provider with the given bound
// configuration. An unregistered provider is a configuration error.
func Create(id core.ProviderID, cfg core.ProviderConfig) (core.Provider, error) {
	factory := Get(id)
	if factory == nil {
		return nil, fmt.Errorf("%w: no adapter registered for provider %q (available: %v)",
			core.ErrConfiguration, id, List())
	}
	return factory(cfg), nil
}

// List returns the registered provider IDs in sorted order.
func List() []core.ProviderID {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]core.ProviderID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsRegistered reports whether an adapter exists for the provider.
func IsRegistered(id core.ProviderID) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[id]
	return ok
}
