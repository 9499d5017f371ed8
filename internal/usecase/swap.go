package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"runes-gateway/internal/client/satsterminal"
	"runes-gateway/internal/infra"
	"runes-gateway/internal/usecase/readmodel"
)

type AggregatorClient interface {
	Search(ctx context.Context, query string, sell bool) ([]satsterminal.SearchItem, error)
	Quote(ctx context.Context, req satsterminal.QuoteRequest) (*satsterminal.Quote, error)
	CreatePSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	ConfirmPSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	PopularTokens(ctx context.Context) (json.RawMessage, error)
}

type PopularRunesRepository interface {
	Latest(ctx context.Context) (*readmodel.PopularRunesRM, error)
	Insert(ctx context.Context, runesData json.RawMessage) error
	Prune(ctx context.Context, keep int) (int64, error)
	MarkRefreshAttempt(ctx context.Context) error
}

// SearchResult is an aggregator hit with a guaranteed stable id for
// client-side caching.
type SearchResult struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ImageURI     string  `json:"imageURI,omitempty"`
	Divisibility int     `json:"divisibility"`
	PriceUSD     float64 `json:"price_usd,omitempty"`
}

type QuoteInput struct {
	BTCAmount string
	RuneName  string
	Address   string
	Sell      bool
}

type QuoteResult struct {
	BestMarketplace string          `json:"bestMarketplace,omitempty"`
	FormattedAmount string          `json:"totalFormattedAmount"`
	TotalPriceSats  string          `json:"totalPrice"`
	PricePerUnit    string          `json:"pricePerUnit,omitempty"`
	Offers          json.RawMessage `json:"offers,omitempty"`
}

type SwapUseCase interface {
	Search(ctx context.Context, query string, sell bool) ([]SearchResult, error)
	Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error)
	CreatePSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	ConfirmPSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	Popular(ctx context.Context) (json.RawMessage, error)
}

type swapUseCaseImpl struct {
	client  AggregatorClient
	popular PopularRunesRepository
}

func NewSwapUseCase(client AggregatorClient, popular PopularRunesRepository) SwapUseCase {
	return &swapUseCaseImpl{
		client:  client,
		popular: popular,
	}
}

func (s *swapUseCaseImpl) Search(ctx context.Context, query string, sell bool) ([]SearchResult, error) {
	items, err := s.client.Search(ctx, query, sell)
	if err != nil {
		return nil, classifyUpstream(err)
	}

	results := make([]SearchResult, len(items))
	for i, item := range items {
		results[i] = SearchResult{
			ID:           searchResultID(item, i),
			Name:         item.Name,
			ImageURI:     item.Icon,
			Divisibility: item.Decimals,
			PriceUSD:     item.PriceUSD,
		}
	}

	return results, nil
}

// searchResultID prefers the upstream id; otherwise it derives a stable
// "search_<8-hex>" id from the item's identity fields plus its position, so
// repeated searches for the same query yield identical ids.
func searchResultID(item satsterminal.SearchItem, position int) string {
	switch {
	case item.TokenID != "":
		return item.TokenID
	case item.ID != "":
		return item.ID
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s|%d", item.Token, item.Name, item.Icon, position)
	return fmt.Sprintf("search_%08x", h.Sum32())
}

func (s *swapUseCaseImpl) Quote(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	quote, err := s.client.Quote(ctx, satsterminal.QuoteRequest{
		BTCAmount: input.BTCAmount,
		RuneName:  input.RuneName,
		Address:   input.Address,
		Sell:      input.Sell,
	})
	if err != nil {
		return nil, classifyUpstream(err)
	}

	result := &QuoteResult{
		BestMarketplace: quote.BestMarketplace,
		FormattedAmount: quote.TotalFormattedAmount,
		TotalPriceSats:  quote.TotalPrice,
		Offers:          quote.Offers,
	}
	result.PricePerUnit = pricePerUnit(quote.TotalPrice, quote.TotalFormattedAmount)

	return result, nil
}

// pricePerUnit derives the sats-per-rune ratio with exact decimal arithmetic.
// An unparsable or zero amount yields an empty string rather than an error;
// the ratio is advisory.
func pricePerUnit(totalPrice, formattedAmount string) string {
	price, err := decimal.NewFromString(strings.TrimSpace(totalPrice))
	if err != nil {
		return ""
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(formattedAmount), ",", ""))
	if err != nil || amount.IsZero() {
		return ""
	}

	return price.DivRound(amount, 8).String()
}

func (s *swapUseCaseImpl) CreatePSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	raw, err := s.client.CreatePSBT(ctx, payload)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return raw, nil
}

func (s *swapUseCaseImpl) ConfirmPSBT(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	raw, err := s.client.ConfirmPSBT(ctx, payload)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return raw, nil
}

// Popular serves the script-maintained cache; an empty cache falls back to a
// live aggregator fetch without writing (the refresh script owns the table).
func (s *swapUseCaseImpl) Popular(ctx context.Context) (json.RawMessage, error) {
	cached, err := s.popular.Latest(ctx)
	if err == nil {
		return cached.RunesData, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("popular runes cache read failed", "error", err.Error())
	}

	raw, liveErr := s.client.PopularTokens(ctx)
	if liveErr != nil {
		return nil, classifyUpstream(liveErr)
	}
	return raw, nil
}
