package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// AssetPrice is the quote for one identifier as returned by the
// simple/price endpoint. Everything beyond the spot price is optional in
// the upstream payload, so those fields are nullable.
type AssetPrice struct {
	USD          float64  `json:"usd"`
	USDMarketCap *float64 `json:"usd_market_cap"`
	USD24hVol    *float64 `json:"usd_24h_vol"`
	USD24hChange *float64 `json:"usd_24h_change"`
}

// SimplePrice retrieves spot prices for the given canonical identifiers.
// It issues exactly one GET per invocation, joining all identifiers into
// a single comma-separated query parameter. A non-2xx status fails the
// whole batch; there is no retry and no partial extraction.
func (c *Client) SimplePrice(ctx context.Context, ids []string, vsCurrency string, opts ...ClientOption) (map[string]AssetPrice, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no identifiers to query")
	}
	var override = &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	query.Add("ids", strings.Join(ids, ","))
	query.Add("vs_currencies", vsCurrency)
	query.Add("include_market_cap", "true")
	query.Add("include_24hr_vol", "true")
	query.Add("include_24hr_change", "true")

	url := fmt.Sprintf("%s/simple/price?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request with ids=%s", strings.Join(ids, ","))

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("unauthorized")

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var prices map[string]AssetPrice
	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&prices); err != nil {
		return nil, fmt.Errorf("decoding prices response: %w", err)
	}
	return prices, nil
}
