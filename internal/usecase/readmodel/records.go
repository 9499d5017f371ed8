// Package readmodel holds the flat record shapes the repositories return to
// the usecase layer.
package readmodel

import (
	"time"

	"github.com/goccy/go-json"
)

// LiquidiumTokenRM is the per-wallet bearer token issued by the lending API.
// At most one record exists per wallet address.
type LiquidiumTokenRM struct {
	WalletAddress   string     `json:"wallet_address"`
	OrdinalsAddress string     `json:"ordinals_address"`
	PaymentAddress  string     `json:"payment_address"`
	JWT             string     `json:"-"`
	ExpiresAt       *time.Time `json:"expires_at"`
	LastUsedAt      time.Time  `json:"last_used_at"`
}

// Expired reports whether the token can no longer be used. A nil expiry means
// the issuer's expiry could not be decoded; such tokens are used until the
// upstream rejects them.
func (t *LiquidiumTokenRM) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// RuneRM mirrors one row of the lazily populated rune metadata table. The id
// is the canonical "block:tx" identifier and is immutable once assigned by
// the indexer.
type RuneRM struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	FormattedName string     `json:"formatted_name"`
	SpacedName    string     `json:"spaced_name,omitempty"`
	Symbol        string     `json:"symbol,omitempty"`
	Decimals      int        `json:"decimals"`
	EtchingTxID   *string    `json:"etching_txid,omitempty"`
	CurrentSupply *string    `json:"current_supply,omitempty"`
	MarketCap     *int64     `json:"market_cap,omitempty"`
	PriceInSats   *float64   `json:"price_in_sats,omitempty"`
	PriceInUSD    *float64   `json:"price_in_usd,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BorrowRangeRM is one cached collateral offer range. Freshness is time-based:
// rows older than the configured TTL are refetched, never purged.
type BorrowRangeRM struct {
	RuneID       string    `json:"rune_id"`
	MinAmount    string    `json:"min_amount"`
	MaxAmount    string    `json:"max_amount"`
	LoanTermDays *int      `json:"loan_term_days,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PopularRunesRM is the newest row of the script-maintained popular runes
// cache; RunesData is stored verbatim as fetched from the aggregator.
type PopularRunesRM struct {
	ID                 int64           `json:"id"`
	RunesData          json.RawMessage `json:"runes_data"`
	CreatedAt          time.Time       `json:"created_at"`
	LastRefreshAttempt *time.Time      `json:"last_refresh_attempt,omitempty"`
}
