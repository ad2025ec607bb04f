package hyperbolic

import (
	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers"
)

func init() {
	providers.Register(core.ProviderHyperbolic, func(cfg core.ProviderConfig) core.Provider {
		return New(cfg)
	})
}
