package plugin

import (
    "context"

    "cryptoagent/internal/runtime"
)

// Static model stubs. They satisfy the runtime's model slots without any
// real generation behind them.

func textSmall(_ context.Context, _ runtime.ModelParams) (string, error) {
    return "Sure thing, happy to help with crypto prices.", nil
}

func textLarge(_ context.Context, _ runtime.ModelParams) (string, error) {
    return "I track cryptocurrency markets and can report current USD prices along with their 24 hour movement whenever you ask.", nil
}

func modelStubs() map[string]runtime.ModelFunc {
    return map[string]runtime.ModelFunc{
        runtime.ModelTextSmall: textSmall,
        runtime.ModelTextLarge: textLarge,
    }
}
