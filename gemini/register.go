package gemini

import (
	"context"

	"github.com/randalmurphal/promptpager/provider"
)

func init() {
	provider.Register(ProviderName, newFromProviderConfig)
}

// newFromProviderConfig creates a Client from a provider.Config.
// This is the factory function registered with the provider registry.
func newFromProviderConfig(cfg provider.Config) (provider.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(context.Background(), configFromProvider(cfg))
}
