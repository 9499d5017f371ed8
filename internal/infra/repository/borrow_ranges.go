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

type borrowRangeRepository struct {
	pool *pgxpool.Pool
}

func NewBorrowRangeRepository(pool *pgxpool.Pool) usecase.BorrowRangeRepository {
	return &borrowRangeRepository{pool: pool}
}

func (r *borrowRangeRepository) Get(ctx context.Context, runeID string) (*readmodel.BorrowRangeRM, error) {
	const query = `
		SELECT rune_id, min_amount, max_amount, loan_term_days, updated_at
		FROM borrow_range_cache
		WHERE rune_id = $1`

	var rec readmodel.BorrowRangeRM
	err := r.pool.QueryRow(ctx, query, runeID).Scan(
		&rec.RuneID,
		&rec.MinAmount,
		&rec.MaxAmount,
		&rec.LoanTermDays,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow range not cached", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read borrow range cache", err)
	}

	return &rec, nil
}

// Upsert refreshes the single cache row per rune. Staleness is judged by the
// reader against updated_at; rows are overwritten, never deleted.
func (r *borrowRangeRepository) Upsert(ctx context.Context, rec *readmodel.BorrowRangeRM) error {
	const query = `
		INSERT INTO borrow_range_cache (rune_id, min_amount, max_amount, loan_term_days, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (rune_id) DO UPDATE SET
			min_amount     = EXCLUDED.min_amount,
			max_amount     = EXCLUDED.max_amount,
			loan_term_days = EXCLUDED.loan_term_days,
			updated_at     = now()`

	_, err := r.pool.Exec(ctx, query, rec.RuneID, rec.MinAmount, rec.MaxAmount, rec.LoanTermDays)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert borrow range cache", err)
	}

	return nil
}
