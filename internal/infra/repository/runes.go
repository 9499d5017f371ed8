package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runes-gateway/internal/infra"
	"runes-gateway/internal/usecase"
	"runes-gateway/internal/usecase/readmodel"
)

const runeColumns = `id, name, formatted_name, spaced_name, symbol, decimals,
	etching_txid, current_supply, market_cap, price_in_sats, price_in_usd,
	created_at, updated_at`

type runeRepository struct {
	pool *pgxpool.Pool
}

func NewRuneRepository(pool *pgxpool.Pool) usecase.RuneRepository {
	return &runeRepository{pool: pool}
}

func (r *runeRepository) FindByID(ctx context.Context, id string) (*readmodel.RuneRM, error) {
	return r.findOne(ctx, `SELECT `+runeColumns+` FROM runes WHERE id = $1`, id)
}

func (r *runeRepository) FindByName(ctx context.Context, name string) (*readmodel.RuneRM, error) {
	return r.findOne(ctx, `SELECT `+runeColumns+` FROM runes WHERE lower(name) = lower($1)`, name)
}

// FindByIDPrefix matches rows whose canonical id starts with "<prefix>:".
func (r *runeRepository) FindByIDPrefix(ctx context.Context, prefix string) (*readmodel.RuneRM, error) {
	return r.findOne(ctx, `SELECT `+runeColumns+` FROM runes WHERE id LIKE $1 || ':%' ORDER BY id LIMIT 1`, prefix)
}

func (r *runeRepository) findOne(ctx context.Context, query string, arg any) (*readmodel.RuneRM, error) {
	var rec readmodel.RuneRM
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&rec.ID,
		&rec.Name,
		&rec.FormattedName,
		&rec.SpacedName,
		&rec.Symbol,
		&rec.Decimals,
		&rec.EtchingTxID,
		&rec.CurrentSupply,
		&rec.MarketCap,
		&rec.PriceInSats,
		&rec.PriceInUSD,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rune not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rune", err)
	}

	return &rec, nil
}

// Save lazily persists indexer metadata on first lookup-miss. The id is
// immutable; a conflicting insert only refreshes the mutable market fields.
func (r *runeRepository) Save(ctx context.Context, rec *readmodel.RuneRM) error {
	const query = `
		INSERT INTO runes (id, name, formatted_name, spaced_name, symbol, decimals,
			etching_txid, current_supply, market_cap, price_in_sats, price_in_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			current_supply = EXCLUDED.current_supply,
			market_cap     = EXCLUDED.market_cap,
			price_in_sats  = EXCLUDED.price_in_sats,
			price_in_usd   = EXCLUDED.price_in_usd,
			updated_at     = now()`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Name,
		rec.FormattedName,
		rec.SpacedName,
		rec.Symbol,
		rec.Decimals,
		rec.EtchingTxID,
		rec.CurrentSupply,
		rec.MarketCap,
		rec.PriceInSats,
		rec.PriceInUSD,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save rune", err)
	}

	return nil
}
