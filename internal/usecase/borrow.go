package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"runes-gateway/internal/client/liquidium"
	"runes-gateway/internal/infra"
	"runes-gateway/internal/pkg/clock"
	"runes-gateway/internal/pkg/config"
	"runes-gateway/internal/pkg/errs"
	"runes-gateway/internal/usecase/readmodel"
)

// rangeProbeAmount is the nominal collateral quantity used to discover the
// advertised offer ranges.
const rangeProbeAmount = "1"

type BorrowRangeRepository interface {
	Get(ctx context.Context, runeID string) (*readmodel.BorrowRangeRM, error)
	Upsert(ctx context.Context, rec *readmodel.BorrowRangeRM) error
}

type LendingBorrowClient interface {
	BorrowRanges(ctx context.Context, userToken, runeID, runeAmount string) (json.RawMessage, error)
	BorrowQuotes(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)
	PrepareBorrow(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)
	SubmitBorrow(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)
	PrepareRepay(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)
	SubmitRepay(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)
	Portfolio(ctx context.Context, userToken string) (json.RawMessage, error)
}

type BorrowRangesResult struct {
	RuneID       string `json:"runeId"`
	MinAmount    string `json:"minAmount"`
	MaxAmount    string `json:"maxAmount"`
	LoanTermDays *int   `json:"loanTermDays,omitempty"`
	Cached       bool   `json:"cached"`
}

type BorrowUseCase interface {
	Ranges(ctx context.Context, runeQuery, walletAddress string) (*BorrowRangesResult, error)
	Quotes(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error)
	Prepare(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error)
	Submit(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error)
	Repay(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error)
	Portfolio(ctx context.Context, walletAddress string) (json.RawMessage, error)
}

type borrowUseCaseImpl struct {
	resolver RuneResolver
	auth     AuthUseCase
	cache    BorrowRangeRepository
	client   LendingBorrowClient
	clock    clock.Clock
	cacheTTL time.Duration
}

func NewBorrowUseCase(
	resolver RuneResolver,
	auth AuthUseCase,
	cache BorrowRangeRepository,
	client LendingBorrowClient,
	clk clock.Clock,
	cacheCfg config.CacheConfig,
) BorrowUseCase {
	return &borrowUseCaseImpl{
		resolver: resolver,
		auth:     auth,
		cache:    cache,
		client:   client,
		clock:    clk,
		cacheTTL: cacheCfg.BorrowRangeTTL,
	}
}

// Ranges serves the cached collateral range when it is fresh; otherwise it
// probes the lending API, recomputes the global bounds and refreshes the
// cache. The cache is consulted before authentication on purpose: a fresh
// cache hit needs no token at all.
func (b *borrowUseCaseImpl) Ranges(ctx context.Context, runeQuery, walletAddress string) (*BorrowRangesResult, error) {
	runeID := b.resolver.Resolve(ctx, runeQuery)

	if cached := b.freshCacheEntry(ctx, runeID); cached != nil {
		return &BorrowRangesResult{
			RuneID:       runeID,
			MinAmount:    cached.MinAmount,
			MaxAmount:    cached.MaxAmount,
			LoanTermDays: cached.LoanTermDays,
			Cached:       true,
		}, nil
	}

	token, err := b.auth.UserToken(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	raw, err := b.client.BorrowRanges(ctx, token, runeID, rangeProbeAmount)
	if err != nil {
		return nil, classifyUpstream(err)
	}

	parsed, err := liquidium.ParseOfferRanges(raw)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}
	if len(parsed.Ranges) == 0 {
		return nil, ErrNoBorrowRanges
	}

	minAmount, maxAmount, err := liquidium.GlobalBounds(parsed.Ranges)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}

	rec := &readmodel.BorrowRangeRM{
		RuneID:       runeID,
		MinAmount:    minAmount,
		MaxAmount:    maxAmount,
		LoanTermDays: parsed.LoanTermDays,
	}
	if err := b.cache.Upsert(ctx, rec); err != nil {
		// Serving the fresh result matters more than caching it.
		slog.Warn("failed to cache borrow range", "rune_id", runeID, "error", err.Error())
	}

	return &BorrowRangesResult{
		RuneID:       runeID,
		MinAmount:    minAmount,
		MaxAmount:    maxAmount,
		LoanTermDays: parsed.LoanTermDays,
		Cached:       false,
	}, nil
}

func (b *borrowUseCaseImpl) freshCacheEntry(ctx context.Context, runeID string) *readmodel.BorrowRangeRM {
	cached, err := b.cache.Get(ctx, runeID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("borrow range cache read failed", "rune_id", runeID, "error", err.Error())
		}
		return nil
	}

	if b.clock.Now().Sub(cached.UpdatedAt) >= b.cacheTTL {
		return nil
	}
	return cached
}

func (b *borrowUseCaseImpl) Quotes(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error) {
	return b.forward(ctx, walletAddress, payload, b.client.BorrowQuotes)
}

func (b *borrowUseCaseImpl) Prepare(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error) {
	return b.forward(ctx, walletAddress, payload, b.client.PrepareBorrow)
}

func (b *borrowUseCaseImpl) Submit(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error) {
	return b.forward(ctx, walletAddress, payload, b.client.SubmitBorrow)
}

// Repay dispatches to the prepare or submit sub-step depending on whether the
// request already carries a signed transaction.
func (b *borrowUseCaseImpl) Repay(ctx context.Context, walletAddress string, payload map[string]any) (json.RawMessage, error) {
	if signed, ok := payload["signed_psbt_base_64"].(string); ok && signed != "" {
		return b.forward(ctx, walletAddress, payload, b.client.SubmitRepay)
	}
	return b.forward(ctx, walletAddress, payload, b.client.PrepareRepay)
}

func (b *borrowUseCaseImpl) Portfolio(ctx context.Context, walletAddress string) (json.RawMessage, error) {
	token, err := b.auth.UserToken(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	raw, err := b.client.Portfolio(ctx, token)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return raw, nil
}

type forwardFunc func(ctx context.Context, userToken string, payload json.RawMessage) (json.RawMessage, error)

// forward resolves the wallet's bearer token and relays the payload, minus
// the internal address field, to the lending API.
func (b *borrowUseCaseImpl) forward(ctx context.Context, walletAddress string, payload map[string]any, call forwardFunc) (json.RawMessage, error) {
	token, err := b.auth.UserToken(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	delete(payload, "address")
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode forward payload")
	}

	raw, err := call(ctx, token, body)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return raw, nil
}
