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

type tokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) usecase.TokenRepository {
	return &tokenRepository{pool: pool}
}

func (r *tokenRepository) Get(ctx context.Context, walletAddress string) (*readmodel.LiquidiumTokenRM, error) {
	const query = `
		SELECT wallet_address, ordinals_address, payment_address, jwt, expires_at, last_used_at
		FROM liquidium_tokens
		WHERE wallet_address = $1`

	var rec readmodel.LiquidiumTokenRM
	err := r.pool.QueryRow(ctx, query, walletAddress).Scan(
		&rec.WalletAddress,
		&rec.OrdinalsAddress,
		&rec.PaymentAddress,
		&rec.JWT,
		&rec.ExpiresAt,
		&rec.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find token by wallet address", err)
	}

	return &rec, nil
}

// Upsert is keyed by wallet address; concurrent submissions for the same
// wallet race at this statement and the last writer wins.
func (r *tokenRepository) Upsert(ctx context.Context, rec *readmodel.LiquidiumTokenRM) error {
	const query = `
		INSERT INTO liquidium_tokens (wallet_address, ordinals_address, payment_address, jwt, expires_at, last_used_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (wallet_address) DO UPDATE SET
			ordinals_address = EXCLUDED.ordinals_address,
			payment_address  = EXCLUDED.payment_address,
			jwt              = EXCLUDED.jwt,
			expires_at       = EXCLUDED.expires_at,
			last_used_at     = now()`

	_, err := r.pool.Exec(ctx, query,
		rec.WalletAddress,
		rec.OrdinalsAddress,
		rec.PaymentAddress,
		rec.JWT,
		rec.ExpiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert token", err)
	}

	return nil
}

func (r *tokenRepository) TouchLastUsed(ctx context.Context, walletAddress string) error {
	const query = `UPDATE liquidium_tokens SET last_used_at = now() WHERE wallet_address = $1`

	if _, err := r.pool.Exec(ctx, query, walletAddress); err != nil {
		return infra.WrapRepoErr("failed to touch token last_used_at", err)
	}

	return nil
}
