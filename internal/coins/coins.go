package coins

import "strings"

// synonym maps one surface keyword (symbol or common name) to the
// canonical identifier used when querying the price source. The table is
// ordered so resolution output is deterministic.
type synonym struct {
    keyword string
    id      string
}

// synonyms is static for the process lifetime. Several keywords map to
// the same identifier; Resolve collapses them.
var synonyms = []synonym{
    {"btc", "bitcoin"},
    {"bitcoin", "bitcoin"},
    {"eth", "ethereum"},
    {"ethereum", "ethereum"},
    {"sol", "solana"},
    {"solana", "solana"},
    {"doge", "dogecoin"},
    {"dogecoin", "dogecoin"},
    {"bnb", "binancecoin"},
    {"xrp", "ripple"},
    {"ripple", "ripple"},
    {"ada", "cardano"},
    {"cardano", "cardano"},
}

// DefaultPair is queried when no keyword resolves.
var DefaultPair = []string{"bitcoin", "ethereum"}

// gateKeywords triggers the price action as a whole. It is deliberately a
// superset of the synonym table keys: generic terms like "crypto" or
// "price" run the action even though Resolve then falls back to
// DefaultPair. Keep the two lists loosely in sync when editing.
var gateKeywords = []string{
    "btc", "bitcoin",
    "eth", "ethereum",
    "sol", "solana",
    "doge", "dogecoin",
    "bnb", "xrp", "ripple",
    "ada", "cardano",
    "crypto", "cryptocurrency",
    "price", "prices",
    "market", "coin", "worth", "cost",
}

// Resolve maps free text to a de-duplicated, table-ordered set of
// canonical identifiers. Matching is substring containment on the
// lowercased input, so a keyword inside an unrelated word matches too
// (e.g. "sol" in "solstice" resolves solana). That precision/recall
// trade-off is intentional. Returns DefaultPair when nothing matches.
func Resolve(text string) []string {
    lower := strings.ToLower(text)
    seen := make(map[string]struct{}, 4)
    out := make([]string, 0, 4)
    for _, s := range synonyms {
        if !strings.Contains(lower, s.keyword) { continue }
        if _, dup := seen[s.id]; dup { continue }
        seen[s.id] = struct{}{}
        out = append(out, s.id)
    }
    if len(out) == 0 {
        out = append(out, DefaultPair...)
    }
    return out
}

// MatchesGate is the coarse validation check deciding whether the price
// flow should run at all for the given input.
func MatchesGate(text string) bool {
    lower := strings.ToLower(text)
    for _, k := range gateKeywords {
        if strings.Contains(lower, k) { return true }
    }
    return false
}
