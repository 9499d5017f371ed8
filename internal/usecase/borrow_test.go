//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/pkg/clock"
	"runes-gateway/internal/pkg/config"
	"runes-gateway/internal/usecase"
	"runes-gateway/internal/usecase/readmodel"
	usecasemock "runes-gateway/tests/mock/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const runeID = "840000:28"

type borrowMocks struct {
	resolver *usecasemock.MockRuneResolver
	auth     *usecasemock.MockAuthUseCase
	cache    *usecasemock.MockBorrowRangeRepository
	client   *usecasemock.MockLendingBorrowClient
}

func newBorrowUseCase(t *testing.T, now time.Time) (usecase.BorrowUseCase, borrowMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := borrowMocks{
		resolver: usecasemock.NewMockRuneResolver(ctrl),
		auth:     usecasemock.NewMockAuthUseCase(ctrl),
		cache:    usecasemock.NewMockBorrowRangeRepository(ctrl),
		client:   usecasemock.NewMockLendingBorrowClient(ctrl),
	}
	uc := usecase.NewBorrowUseCase(m.resolver, m.auth, m.cache, m.client, clock.NewMockClock(now), config.CacheConfig{
		BorrowRangeTTL: 5 * time.Minute,
		PopularKeep:    5,
	})
	return uc, m
}

func TestBorrowUseCase_Ranges(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	rangesBody := json.RawMessage(`{
		"valid_ranges": {
			"rune_amount": {
				"ranges": [
					{"min": "100", "max": "18446744073709551615"},
					{"min": "50", "max": "5000"}
				]
			},
			"loan_term_days": [14]
		}
	}`)

	t.Run("cache miss probes upstream and caches the bounds", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(nil, notFoundErr())
		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().BorrowRanges(gomock.Any(), "user-jwt", runeID, "1").Return(rangesBody, nil)

		var cached *readmodel.BorrowRangeRM
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, rec *readmodel.BorrowRangeRM) error {
				cached = rec
				return nil
			})

		result, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		require.NoError(t, err)
		assert.Equal(t, runeID, result.RuneID)
		assert.Equal(t, "50", result.MinAmount)
		assert.Equal(t, "18446744073709551615", result.MaxAmount)
		require.NotNil(t, result.LoanTermDays)
		assert.Equal(t, 14, *result.LoanTermDays)
		assert.False(t, result.Cached)

		require.NotNil(t, cached)
		assert.Equal(t, "50", cached.MinAmount)
		assert.Equal(t, "18446744073709551615", cached.MaxAmount)
	})

	t.Run("fresh cache entry is served without an upstream call", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		days := 14
		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(&readmodel.BorrowRangeRM{
			RuneID:       runeID,
			MinAmount:    "50",
			MaxAmount:    "18446744073709551615",
			LoanTermDays: &days,
			UpdatedAt:    now.Add(-2 * time.Minute),
		}, nil)

		result, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.Equal(t, "50", result.MinAmount)
		assert.Equal(t, "18446744073709551615", result.MaxAmount)
	})

	t.Run("stale cache entry triggers a fresh fetch", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(&readmodel.BorrowRangeRM{
			RuneID:    runeID,
			MinAmount: "1",
			MaxAmount: "2",
			UpdatedAt: now.Add(-6 * time.Minute),
		}, nil)
		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().BorrowRanges(gomock.Any(), "user-jwt", runeID, "1").Return(rangesBody, nil)
		m.cache.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		require.NoError(t, err)
		assert.False(t, result.Cached)
		assert.Equal(t, "50", result.MinAmount)
	})

	t.Run("missing token aborts before the upstream call", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(nil, notFoundErr())
		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("", usecase.ErrAuthRequired)

		_, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		assert.ErrorIs(t, err, usecase.ErrAuthRequired)
	})

	t.Run("empty range list is not-found and not cached", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(nil, notFoundErr())
		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().BorrowRanges(gomock.Any(), "user-jwt", runeID, "1").
			Return(json.RawMessage(`{"valid_ranges":{"rune_amount":{"ranges":[]}}}`), nil)

		_, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		assert.ErrorIs(t, err, usecase.ErrNoBorrowRanges)
	})

	t.Run("unrecognized response shape fails as upstream-unavailable", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.resolver.EXPECT().Resolve(gomock.Any(), "BITCOIN").Return(runeID)
		m.cache.EXPECT().Get(gomock.Any(), runeID).Return(nil, notFoundErr())
		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().BorrowRanges(gomock.Any(), "user-jwt", runeID, "1").
			Return(json.RawMessage(`{"totally":"different"}`), nil)

		_, err := uc.Ranges(ctx, "BITCOIN", walletAddr)
		assert.ErrorIs(t, err, usecase.ErrUpstreamUnavailable)
	})
}

func TestBorrowUseCase_Forwarding(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("strips the internal address field before forwarding", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().BorrowQuotes(gomock.Any(), "user-jwt", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (json.RawMessage, error) {
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.NotContains(t, body, "address")
				assert.Equal(t, runeID, body["rune_id"])
				return json.RawMessage(`{"offers":[]}`), nil
			})

		result, err := uc.Quotes(ctx, walletAddr, map[string]any{
			"address": walletAddr,
			"rune_id": runeID,
			"amount":  "250",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"offers":[]}`, string(result))
	})

	t.Run("repay prefers submit when a signed transaction is present", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().SubmitRepay(gomock.Any(), "user-jwt", gomock.Any()).
			Return(json.RawMessage(`{"txid":"abc"}`), nil)

		_, err := uc.Repay(ctx, walletAddr, map[string]any{
			"address":             walletAddr,
			"signed_psbt_base_64": "cHNidP8B",
		})
		require.NoError(t, err)
	})

	t.Run("repay falls back to prepare without a signed transaction", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().PrepareRepay(gomock.Any(), "user-jwt", gomock.Any()).
			Return(json.RawMessage(`{"psbt":"unsigned"}`), nil)

		_, err := uc.Repay(ctx, walletAddr, map[string]any{
			"address": walletAddr,
			"loan_id": "loan-1",
		})
		require.NoError(t, err)
	})

	t.Run("upstream status errors are classified", func(t *testing.T) {
		uc, m := newBorrowUseCase(t, now)

		m.auth.EXPECT().UserToken(gomock.Any(), walletAddr).Return("user-jwt", nil)
		m.client.EXPECT().Portfolio(gomock.Any(), "user-jwt").
			Return(nil, &rest.APIError{Status: 429, Message: "Rate limit exceeded"})

		_, err := uc.Portfolio(ctx, walletAddr)
		assert.ErrorIs(t, err, usecase.ErrRateLimited)
	})
}
