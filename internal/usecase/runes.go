package usecase

import (
	"context"
	"log/slog"
	"strings"

	"runes-gateway/internal/client/ordiscan"
	"runes-gateway/internal/infra"
	"runes-gateway/internal/usecase/readmodel"
)

type IndexerClient interface {
	RuneInfo(ctx context.Context, name string) (*ordiscan.RuneInfo, error)
	ListRunes(ctx context.Context) ([]ordiscan.RuneInfo, error)
	Market(ctx context.Context, name string) (*ordiscan.RuneMarket, error)
	LastSale(ctx context.Context, name string) (*ordiscan.RuneSale, error)
}

type RuneInfoUseCase interface {
	// Info resolves a name or canonical id to full rune metadata, lazily
	// persisting indexer results on first miss.
	Info(ctx context.Context, query string) (*readmodel.RuneRM, error)
	List(ctx context.Context) ([]ordiscan.RuneInfo, error)
	// LastSale returns the most recent settled sale for a rune.
	LastSale(ctx context.Context, query string) (*ordiscan.RuneSale, error)
}

type runeInfoUseCaseImpl struct {
	runes    RuneRepository
	resolver RuneResolver
	indexer  IndexerClient
}

func NewRuneInfoUseCase(runes RuneRepository, resolver RuneResolver, indexer IndexerClient) RuneInfoUseCase {
	return &runeInfoUseCaseImpl{
		runes:    runes,
		resolver: resolver,
		indexer:  indexer,
	}
}

func (u *runeInfoUseCaseImpl) Info(ctx context.Context, query string) (*readmodel.RuneRM, error) {
	resolved := u.resolver.Resolve(ctx, query)

	var rec *readmodel.RuneRM
	var err error
	if strings.Contains(resolved, ":") {
		rec, err = u.runes.FindByID(ctx, resolved)
	} else {
		rec, err = u.runes.FindByName(ctx, resolved)
	}
	if err == nil {
		return rec, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	// First miss: ask the indexer and persist.
	info, err := u.indexer.RuneInfo(ctx, query)
	if err != nil {
		return nil, classifyUpstream(err)
	}

	fresh := &readmodel.RuneRM{
		ID:            info.ID,
		Name:          info.Name,
		FormattedName: info.FormattedName,
		SpacedName:    info.SpacedName,
		Symbol:        info.Symbol,
		Decimals:      info.Divisibility,
		EtchingTxID:   info.EtchingTxID,
		CurrentSupply: info.CurrentSupply,
	}

	if market, marketErr := u.indexer.Market(ctx, info.Name); marketErr == nil {
		fresh.PriceInSats = market.PriceInSats
		fresh.PriceInUSD = market.PriceInUSD
		fresh.MarketCap = market.MarketCap
	}

	if saveErr := u.runes.Save(ctx, fresh); saveErr != nil {
		// Metadata is still served; only the lazy cache write failed.
		slog.Warn("failed to persist rune metadata", "rune_id", fresh.ID, "error", saveErr.Error())
	}

	return fresh, nil
}

func (u *runeInfoUseCaseImpl) LastSale(ctx context.Context, query string) (*ordiscan.RuneSale, error) {
	rec, err := u.Info(ctx, query)
	if err != nil {
		return nil, err
	}

	sale, err := u.indexer.LastSale(ctx, rec.Name)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	if sale == nil {
		return nil, ErrUpstreamNotFound
	}

	return sale, nil
}

func (u *runeInfoUseCaseImpl) List(ctx context.Context) ([]ordiscan.RuneInfo, error) {
	infos, err := u.indexer.ListRunes(ctx)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return infos, nil
}
