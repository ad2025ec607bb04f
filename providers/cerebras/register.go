package cerebras

import (
	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers"
)

func init() {
	providers.Register(core.ProviderCerebras, func(cfg core.ProviderConfig) core.Provider {
		return New(cfg)
	})
}
