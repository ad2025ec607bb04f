package together

import (
	"github.com/tessera-ai/tessera/core"
	"github.com/tessera-ai/tessera/providers"
)

func init() {
	providers.Register(core.ProviderTogether, func(cfg core.ProviderConfig) core.Provider {
		return New(cfg)
	})
}
