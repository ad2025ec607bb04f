package tessera

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tessera-ai/tessera/core"
)

// ProviderWarning records a provider whose model listing failed during a
// fan-out. The error is already normalized into the unified taxonomy.
type ProviderWarning struct {
	Provider core.ProviderID
	Err      error
}

func (w ProviderWarning) String() string {
	return fmt.Sprintf("%s: %v", w.Provider, w.Err)
}

// ModelList is the aggregated result of a model listing fan-out. Models are
// grouped by provider in registration order; Warnings carries per-provider
// failures that did not abort the aggregation.
type ModelList struct {
	Models   []core.ModelInfo
	Warnings []ProviderWarning
}

// ListModels queries every configured provider concurrently and aggregates
// the results. A provider failure never hides another provider's models: it
// is reported as a warning instead. The call fails only when no provider is
// configured or every provider failed.
func (c *Client) ListModels(ctx context.Context) (*ModelList, error) {
	ids := c.store.Providers()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no providers configured", core.ErrConfiguration)
	}

	type result struct {
		models []core.ModelInfo
		err    error
	}
	results := make([]result, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id core.ProviderID) {
			defer wg.Done()
			models, err := c.ListProviderModels(ctx, id)
			results[i] = result{models: models, err: err}
		}(i, id)
	}
	wg.Wait()

	list := &ModelList{}
	var failures []error
	for i, id := range ids {
		if results[i].err != nil {
			list.Warnings = append(list.Warnings, ProviderWarning{Provider: id, Err: results[i].err})
			failures = append(failures, fmt.Errorf("%s: %w", id, results[i].err))
			continue
		}
		list.Models = append(list.Models, results[i].models...)
	}

	if len(failures) == len(ids) {
		return nil, errors.Join(failures...)
	}
	return list, nil
}

// ListProviderModels queries one provider's model listing. Unlike the
// fan-out, a failure here propagates as an error.
func (c *Client) ListProviderModels(ctx context.Context, p core.ProviderID) ([]core.ModelInfo, error) {
	adapter, _, err := c.adapterFor(p)
	if err != nil {
		return nil, err
	}
	return adapter.ListModels(ctx)
}
