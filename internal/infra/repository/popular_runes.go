package repository

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"runes-gateway/internal/infra"
	"runes-gateway/internal/usecase"
	"runes-gateway/internal/usecase/readmodel"
)

// popularRunesRepository reads the cache maintained by cmd/popular-refresh.
// Request-serving code only ever reads the newest row.
type popularRunesRepository struct {
	pool *pgxpool.Pool
}

func NewPopularRunesRepository(pool *pgxpool.Pool) usecase.PopularRunesRepository {
	return &popularRunesRepository{pool: pool}
}

func (r *popularRunesRepository) Latest(ctx context.Context) (*readmodel.PopularRunesRM, error) {
	const query = `
		SELECT id, runes_data, created_at, last_refresh_attempt
		FROM popular_runes_cache
		ORDER BY created_at DESC
		LIMIT 1`

	var rec readmodel.PopularRunesRM
	var raw []byte
	err := r.pool.QueryRow(ctx, query).Scan(&rec.ID, &raw, &rec.CreatedAt, &rec.LastRefreshAttempt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("popular runes cache empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read popular runes cache", err)
	}
	rec.RunesData = json.RawMessage(raw)

	return &rec, nil
}

func (r *popularRunesRepository) Insert(ctx context.Context, runesData json.RawMessage) error {
	const query = `
		INSERT INTO popular_runes_cache (runes_data, last_refresh_attempt)
		VALUES ($1, now())`

	if _, err := r.pool.Exec(ctx, query, []byte(runesData)); err != nil {
		return infra.WrapRepoErr("failed to insert popular runes cache", err)
	}

	return nil
}

// Prune retains only the keep newest rows.
func (r *popularRunesRepository) Prune(ctx context.Context, keep int) (int64, error) {
	const query = `
		DELETE FROM popular_runes_cache
		WHERE id NOT IN (
			SELECT id FROM popular_runes_cache ORDER BY created_at DESC LIMIT $1
		)`

	tag, err := r.pool.Exec(ctx, query, keep)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune popular runes cache", err)
	}

	return tag.RowsAffected(), nil
}

// MarkRefreshAttempt records a refresh attempt that produced no new row
// (fetch failure), so operators can tell "stale" from "not trying".
func (r *popularRunesRepository) MarkRefreshAttempt(ctx context.Context) error {
	const query = `
		UPDATE popular_runes_cache SET last_refresh_attempt = now()
		WHERE id = (SELECT id FROM popular_runes_cache ORDER BY created_at DESC LIMIT 1)`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return infra.WrapRepoErr("failed to mark refresh attempt", err)
	}

	return nil
}
