package usecase

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"

	"runes-gateway/internal/client/liquidium"
	"runes-gateway/internal/infra"
	"runes-gateway/internal/pkg/clock"
	"runes-gateway/internal/pkg/jwtdecode"
	"runes-gateway/internal/usecase/readmodel"
)

type TokenRepository interface {
	Get(ctx context.Context, walletAddress string) (*readmodel.LiquidiumTokenRM, error)
	Upsert(ctx context.Context, rec *readmodel.LiquidiumTokenRM) error
	TouchLastUsed(ctx context.Context, walletAddress string) error
}

type LendingAuthClient interface {
	PrepareAuth(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	SubmitAuth(ctx context.Context, payload json.RawMessage) (*liquidium.AuthSubmitResult, error)
}

// SubmitChallengeInput carries the signed challenge. Payload is forwarded to
// the lending API verbatim; the addresses key the stored token record.
type SubmitChallengeInput struct {
	WalletAddress   string
	OrdinalsAddress string
	PaymentAddress  string
	Payload         json.RawMessage
}

type AuthUseCase interface {
	PrepareChallenge(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	SubmitChallenge(ctx context.Context, input SubmitChallengeInput) (json.RawMessage, error)
	// UserToken returns a usable bearer token for the wallet, or
	// ErrAuthRequired when none is stored or the stored one has expired.
	UserToken(ctx context.Context, walletAddress string) (string, error)
}

type authUseCaseImpl struct {
	tokens TokenRepository
	client LendingAuthClient
	clock  clock.Clock
}

func NewAuthUseCase(tokens TokenRepository, client LendingAuthClient, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		tokens: tokens,
		client: client,
		clock:  clk,
	}
}

func (a *authUseCaseImpl) PrepareChallenge(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	raw, err := a.client.PrepareAuth(ctx, payload)
	if err != nil {
		return nil, classifyUpstream(err)
	}
	return raw, nil
}

func (a *authUseCaseImpl) SubmitChallenge(ctx context.Context, input SubmitChallengeInput) (json.RawMessage, error) {
	result, err := a.client.SubmitAuth(ctx, input.Payload)
	if err != nil {
		return nil, classifyUpstream(err)
	}

	// Expiry is read from the token payload without verifying the signature;
	// verification is the issuer's job. A decode failure leaves expires_at
	// null and the token is used until the upstream rejects it.
	expiresAt, decodeErr := jwtdecode.Expiry(result.UserToken)
	if decodeErr != nil {
		slog.Warn("failed to decode bearer token expiry",
			"wallet_address", input.WalletAddress, "error", decodeErr.Error())
	}

	rec := &readmodel.LiquidiumTokenRM{
		WalletAddress:   input.WalletAddress,
		OrdinalsAddress: input.OrdinalsAddress,
		PaymentAddress:  input.PaymentAddress,
		JWT:             result.UserToken,
		ExpiresAt:       expiresAt,
	}
	if err := a.tokens.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	return result.Raw, nil
}

func (a *authUseCaseImpl) UserToken(ctx context.Context, walletAddress string) (string, error) {
	rec, err := a.tokens.Get(ctx, walletAddress)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrAuthRequired
		}
		return "", err
	}

	// An expired token is treated identically to a missing one.
	if rec.Expired(a.clock.Now()) {
		return "", ErrAuthRequired
	}

	if err := a.tokens.TouchLastUsed(ctx, walletAddress); err != nil {
		slog.Warn("failed to touch token last_used_at",
			"wallet_address", walletAddress, "error", err.Error())
	}

	return rec.JWT, nil
}
