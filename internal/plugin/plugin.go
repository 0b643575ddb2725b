// Package plugin assembles the crypto companion's runtime capabilities:
// the price lookup action, a greeting action, a static provider, a
// heartbeat service, model stubs, event-log handlers and one HTTP route.
package plugin

import (
    "context"
    "log/slog"

    "cryptoagent/internal/runtime"
)

// ConfigKeyAPIKey is the one optional setting the plugin consumes at
// initialization. Absence is logged, never fatal.
const ConfigKeyAPIKey = "COINGECKO_API_KEY"

// New builds the plugin. The price source is the only real dependency;
// everything else is static.
func New(source priceSource, vsCurrency string, log *slog.Logger) *runtime.Plugin {
    if log == nil { log = slog.Default() }
    return &runtime.Plugin{
        Name:        "crypto-companion",
        Description: "Crypto price lookups plus starter actions for the agent runtime",
        Init: func(ctx context.Context, cfg runtime.Config) error {
            if cfg[ConfigKeyAPIKey] == "" {
                log.WarnContext(ctx, "no CoinGecko API key configured; using public rate limits",
                    "key", ConfigKeyAPIKey)
            }
            return nil
        },
        Actions: []runtime.Action{
            // Order matters: the price gate is checked before the
            // always-true greeting.
            NewPriceAction(source, vsCurrency, log),
            HelloAction{},
        },
        Providers: []runtime.Provider{FactsProvider{}},
        Services:  []runtime.Service{NewHeartbeatService(log)},
        Models:    modelStubs(),
        Routes:    []runtime.Route{helloRoute()},
        Events:    eventHandlers(log),
    }
}
