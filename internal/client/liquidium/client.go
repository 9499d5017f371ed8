// Package liquidium wraps the lending API. Every authenticated call carries
// the static server key as "Authorization: Bearer" plus the per-user bearer
// token in "x-user-token".
package liquidium

import (
	"context"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/pkg/config"
)

const userTokenHeader = "x-user-token"

type Client struct {
	rest *rest.Client
}

func NewClient(cfg config.LiquidiumConfig) *Client {
	return &Client{
		rest: rest.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout),
	}
}

// PrepareAuth forwards the challenge request and returns the messages-to-sign
// and nonces verbatim.
func (c *Client) PrepareAuth(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/auth/prepare", nil, nil, payload)
}

// AuthSubmitResult carries the issued bearer token; the remainder of the
// upstream body is preserved in Raw.
type AuthSubmitResult struct {
	UserToken string
	Raw       json.RawMessage
}

func (c *Client) SubmitAuth(ctx context.Context, payload json.RawMessage) (*AuthSubmitResult, error) {
	raw, err := c.rest.Do(ctx, http.MethodPost, "/auth/submit", nil, nil, payload)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		UserToken string `json:"user_token"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	return &AuthSubmitResult{UserToken: parsed.UserToken, Raw: raw}, nil
}

// BorrowRanges queries the collateral offer-range endpoint with a probe
// amount; the caller normalizes the response shape.
func (c *Client) BorrowRanges(ctx context.Context, userToken, runeID, runeAmount string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("rune_amount", runeAmount)

	path := "/borrower/collateral/runes/" + url.PathEscape(runeID) + "/ranges"
	return c.rest.Do(ctx, http.MethodGet, path, query, c.userHeaders(userToken), nil)
}

// BorrowQuotes fetches loan offers for a collateral amount.
func (c *Client) BorrowQuotes(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/borrower/loans/offers", nil, c.userHeaders(userToken), payload)
}

func (c *Client) PrepareBorrow(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/borrower/loans/start/prepare", nil, c.userHeaders(userToken), payload)
}

func (c *Client) SubmitBorrow(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/borrower/loans/start/submit", nil, c.userHeaders(userToken), payload)
}

func (c *Client) PrepareRepay(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/borrower/loans/repay/prepare", nil, c.userHeaders(userToken), payload)
}

func (c *Client) SubmitRepay(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodPost, "/borrower/loans/repay/submit", nil, c.userHeaders(userToken), payload)
}

// Portfolio returns the caller's loans; offer state transitions live entirely
// on the lending service side.
func (c *Client) Portfolio(ctx context.Context, userToken string) (json.RawMessage, error) {
	return c.rest.Do(ctx, http.MethodGet, "/borrower/portfolio", nil, c.userHeaders(userToken), nil)
}

func (c *Client) userHeaders(userToken string) map[string]string {
	return map[string]string{userTokenHeader: userToken}
}
