package plugin

import (
    "context"

    "cryptoagent/internal/runtime"
)

const factsText = "The agent can look up live cryptocurrency prices in USD with 24h change."

// FactsProvider returns a fixed informational payload describing what the
// plugin can do. It exists to satisfy the provider registration contract.
type FactsProvider struct{}

func (FactsProvider) Name() string        { return "CRYPTO_FACTS" }
func (FactsProvider) Description() string { return "Static facts about the crypto capabilities" }

func (FactsProvider) Get(context.Context, *runtime.Message) (*runtime.ProviderResult, error) {
    return &runtime.ProviderResult{
        Text:   factsText,
        Values: map[string]any{"capability": "crypto_prices"},
    }, nil
}
