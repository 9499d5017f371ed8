// Package ordiscan wraps the Bitcoin indexer; read-only rune metadata and
// address activity queries.
package ordiscan

import (
	"context"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/pkg/config"
)

type Client struct {
	rest *rest.Client
}

func NewClient(cfg config.OrdiscanConfig) *Client {
	return &Client{
		rest: rest.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
	}
}

// RuneInfo is the indexer's metadata for one rune. ID is "block:tx".
type RuneInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FormattedName string  `json:"formatted_name"`
	SpacedName    string  `json:"spaced_name,omitempty"`
	Symbol        string  `json:"symbol,omitempty"`
	Divisibility  int     `json:"divisibility"`
	EtchingTxID   *string `json:"etching_txid,omitempty"`
	CurrentSupply *string `json:"current_supply,omitempty"`
}

func (c *Client) RuneInfo(ctx context.Context, name string) (*RuneInfo, error) {
	raw, err := c.rest.Do(ctx, http.MethodGet, "/rune/"+url.PathEscape(name), nil, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeRune(raw)
}

func (c *Client) ListRunes(ctx context.Context) ([]RuneInfo, error) {
	raw, err := c.rest.Do(ctx, http.MethodGet, "/runes", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []RuneInfo `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// RuneMarket returns current price data for a rune.
type RuneMarket struct {
	PriceInSats *float64 `json:"price_in_sats"`
	PriceInUSD  *float64 `json:"price_in_usd"`
	MarketCap   *int64   `json:"market_cap_in_usd"`
}

func (c *Client) Market(ctx context.Context, name string) (*RuneMarket, error) {
	raw, err := c.rest.Do(ctx, http.MethodGet, "/rune/"+url.PathEscape(name)+"/market", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data RuneMarket `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// RuneSale is one settled marketplace sale as reported by the indexer.
type RuneSale struct {
	TxID         string   `json:"txid"`
	Amount       string   `json:"amount"`
	PriceSats    int64    `json:"price_sats"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty"`
	Marketplace  string   `json:"marketplace,omitempty"`
	Timestamp    string   `json:"timestamp"`
}

// LastSale returns the most recent sale for a rune, or nil when the indexer
// has never seen one.
func (c *Client) LastSale(ctx context.Context, name string) (*RuneSale, error) {
	query := url.Values{"limit": {"1"}}
	raw, err := c.rest.Do(ctx, http.MethodGet, "/rune/"+url.PathEscape(name)+"/sales", query, nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []RuneSale `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) == 0 {
		return nil, nil
	}

	return &envelope.Data[0], nil
}

func decodeRune(raw json.RawMessage) (*RuneInfo, error) {
	var envelope struct {
		Data *RuneInfo `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var info RuneInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
