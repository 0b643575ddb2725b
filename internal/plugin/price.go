package plugin

import (
    "context"
    "fmt"
    "log/slog"
    "math"
    "strconv"
    "strings"

    "cryptoagent/internal/coingecko"
    "cryptoagent/internal/coins"
    "cryptoagent/internal/runtime"
)

const (
    // PriceActionName identifies the crypto price lookup action.
    PriceActionName = "GET_CRYPTO_PRICE"

    priceHeader = "Current crypto prices:"

    // apologyText is the single user-facing failure notice. Transport
    // errors, bad statuses and malformed payloads all collapse into it;
    // the real error stays in the structured result.
    apologyText = "I couldn't fetch crypto prices right now. Please try again in a moment."
)

// priceSource is the one outbound call the action makes.
type priceSource interface {
    SimplePrice(ctx context.Context, ids []string, vsCurrency string, opts ...coingecko.ClientOption) (map[string]coingecko.AssetPrice, error)
}

// PriceAction resolves asset keywords from a message, fetches quotes and
// replies with a formatted summary.
type PriceAction struct {
    source     priceSource
    vsCurrency string
    log        *slog.Logger
}

func NewPriceAction(source priceSource, vsCurrency string, log *slog.Logger) *PriceAction {
    if vsCurrency == "" { vsCurrency = "usd" }
    if log == nil { log = slog.Default() }
    return &PriceAction{source: source, vsCurrency: vsCurrency, log: log}
}

func (a *PriceAction) Name() string { return PriceActionName }

func (a *PriceAction) Description() string {
    return "Fetches current cryptocurrency prices with 24h change"
}

func (a *PriceAction) Similes() []string {
    return []string{"CHECK_CRYPTO", "COIN_PRICE", "TOKEN_PRICE", "MARKET_PRICE"}
}

func (a *PriceAction) Examples() [][]runtime.Example {
    return [][]runtime.Example{
        {
            {Name: "user", Text: "What's the price of bitcoin?"},
            {Name: "agent", Text: "Current crypto prices:\nBITCOIN: $45230 USD (+5.2% 24h)", Actions: []string{PriceActionName}},
        },
        {
            {Name: "user", Text: "How is the crypto market doing?"},
            {Name: "agent", Text: "Current crypto prices:\nBITCOIN: $45230 USD (+5.2% 24h)\nETHEREUM: $2391.15 USD (-1.3% 24h)", Actions: []string{PriceActionName}},
        },
    }
}

// Validate is the coarse gate: it triggers on a broader keyword list than
// the resolver extracts, so generic asks like "crypto price?" run the
// action and fall back to the default pair.
func (a *PriceAction) Validate(_ context.Context, msg *runtime.Message) (bool, error) {
    return coins.MatchesGate(msg.Text), nil
}

// Handle performs the lookup. Failures are reported through the sink as a
// fixed apology and through the result's error field; the invocation
// itself still counts as handled, so no Go error is returned for them.
func (a *PriceAction) Handle(ctx context.Context, msg *runtime.Message, sink *runtime.Sink) (*runtime.Result, error) {
    ids := coins.Resolve(msg.Text)

    prices, err := a.source.SimplePrice(ctx, ids, a.vsCurrency)
    if err != nil {
        a.log.Warn("price lookup failed", "ids", strings.Join(ids, ","), "err", err)
        if serr := sink.Send(runtime.Content{Text: apologyText, Action: PriceActionName}); serr != nil {
            return nil, serr
        }
        return &runtime.Result{
            Success: false,
            Text:    apologyText,
            Data:    map[string]any{"ids": ids},
            Error:   err.Error(),
        }, nil
    }

    text := formatPrices(ids, prices)
    if err := sink.Send(runtime.Content{Text: text, Action: PriceActionName}); err != nil {
        return nil, err
    }
    return &runtime.Result{
        Success: true,
        Text:    text,
        Data:    map[string]any{"ids": ids, "prices": prices},
    }, nil
}

// formatPrices renders one line per asset under a fixed header, in
// resolver order. Identifiers missing from the payload produce no line.
func formatPrices(ids []string, prices map[string]coingecko.AssetPrice) string {
    lines := make([]string, 0, len(ids)+1)
    lines = append(lines, priceHeader)
    for _, id := range ids {
        p, ok := prices[id]
        if !ok { continue }
        line := fmt.Sprintf("%s: $%s USD", strings.ToUpper(id), formatPrice(p.USD))
        if p.USD24hChange != nil {
            line += fmt.Sprintf(" (%s%% 24h)", formatChange(*p.USD24hChange))
        }
        lines = append(lines, line)
    }
    return strings.Join(lines, "\n")
}

// formatPrice preserves precision without trailing zeros.
func formatPrice(v float64) string {
    return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatChange rounds to two decimals and keeps an explicit leading sign
// for non-negative values.
func formatChange(v float64) string {
    r := math.Round(v*100) / 100
    if r == 0 { r = 0 } // collapse negative zero so the sign logic holds
    s := strconv.FormatFloat(r, 'f', -1, 64)
    if r >= 0 { s = "+" + s }
    return s
}
