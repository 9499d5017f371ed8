// Package satsterminal wraps the exchange aggregator used for swap quotes,
// rune search and PSBT construction.
package satsterminal

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/pkg/config"
)

type Client struct {
	rest *rest.Client
}

func NewClient(cfg config.SatsTerminalConfig) *Client {
	return &Client{
		rest: rest.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
	}
}

// SearchItem is one aggregator search result. ID may be empty upstream; the
// usecase layer synthesizes a stable one in that case.
type SearchItem struct {
	ID       string  `json:"id,omitempty"`
	TokenID  string  `json:"token_id,omitempty"`
	Token    string  `json:"token"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon,omitempty"`
	Decimals int     `json:"divisibility"`
	PriceUSD float64 `json:"price_usd,omitempty"`
}

func (c *Client) Search(ctx context.Context, searchQuery string, sell bool) ([]SearchItem, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("sell", strconv.FormatBool(sell))

	raw, err := c.rest.Do(ctx, http.MethodGet, "/runes/search", query, nil, nil)
	if err != nil {
		return nil, err
	}

	var items []SearchItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Some deployments wrap the list in an envelope.
		var wrapped struct {
			Results []SearchItem `json:"results"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, err
		}
		items = wrapped.Results
	}

	return items, nil
}

// QuoteRequest mirrors the aggregator quote parameters.
type QuoteRequest struct {
	BTCAmount string `json:"btcAmount"`
	RuneName  string `json:"runeName"`
	Address   string `json:"address"`
	Sell      bool   `json:"sell,omitempty"`
}

type Quote struct {
	BestMarketplace      string          `json:"bestMarketplace,omitempty"`
	TotalFormattedAmount string          `json:"totalFormattedAmount"`
	TotalPrice           string          `json:"totalPrice"`
	Offers               json.RawMessage `json:"offers,omitempty"`
}

func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	raw, err := c.rest.Do(ctx, http.MethodPost, "/runes/quote", nil, nil, req)
	if err != nil {
		return nil, err
	}

	var quote Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, err
	}

	return &quote, nil
}

func (c *Client) CreatePSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/runes/psbt/create", nil, nil, payload)
}

func (c *Client) ConfirmPSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/runes/psbt/confirm", nil, nil, payload)
}

// PopularTokens backs the script-maintained popular runes cache.
func (c *Client) PopularTokens(ctx context.Context) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodGet, "/runes/popular", nil, nil, nil)
}
