//go:build unit

package usecase_test

import (
	"testing"

	"runes-gateway/internal/client/rest"
	"runes-gateway/internal/client/satsterminal"
	"runes-gateway/internal/usecase"
	"runes-gateway/internal/usecase/readmodel"
	usecasemock "runes-gateway/tests/mock/usecase"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSwapUseCase(t *testing.T) (usecase.SwapUseCase, *usecasemock.MockAggregatorClient, *usecasemock.MockPopularRunesRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := usecasemock.NewMockAggregatorClient(ctrl)
	popular := usecasemock.NewMockPopularRunesRepository(ctrl)
	return usecase.NewSwapUseCase(client, popular), client, popular
}

func TestSwapUseCase_Search(t *testing.T) {
	ctx := t.Context()

	t.Run("upstream ids are preferred", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Search(gomock.Any(), "dog", false).Return([]satsterminal.SearchItem{
			{TokenID: "840000:3", Name: "DOG•GO•TO•THE•MOON", Decimals: 5},
			{ID: "alt-id", Name: "DOGWIFHAT"},
		}, nil)

		results, err := uc.Search(ctx, "dog", false)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "840000:3", results[0].ID)
		assert.Equal(t, "alt-id", results[1].ID)
	})

	t.Run("items without ids get deterministic fallback ids", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		items := []satsterminal.SearchItem{
			{Token: "RUNEA", Name: "RUNE•A", Icon: "https://img/a.png"},
			{Token: "RUNEB", Name: "RUNE•B", Icon: "https://img/b.png"},
		}
		client.EXPECT().Search(gomock.Any(), "rune", false).Return(items, nil).Times(2)

		first, err := uc.Search(ctx, "rune", false)
		require.NoError(t, err)
		second, err := uc.Search(ctx, "rune", false)
		require.NoError(t, err)

		for i := range first {
			assert.Regexp(t, `^search_[0-9a-f]{8}$`, first[i].ID)
			assert.Equal(t, first[i].ID, second[i].ID, "ids must be stable across identical searches")
		}
		assert.NotEqual(t, first[0].ID, first[1].ID)
	})

	t.Run("rate limited search surfaces the sentinel", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Search(gomock.Any(), "dog", false).
			Return(nil, &rest.APIError{Status: 429, Message: "Rate limit exceeded"})

		_, err := uc.Search(ctx, "dog", false)
		assert.ErrorIs(t, err, usecase.ErrRateLimited)
	})
}

func TestSwapUseCase_Quote(t *testing.T) {
	ctx := t.Context()

	input := usecase.QuoteInput{
		BTCAmount: "0.001",
		RuneName:  "DOG•GO•TO•THE•MOON",
		Address:   walletAddr,
	}

	t.Run("derives the price per unit from the totals", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(&satsterminal.Quote{
			BestMarketplace:      "magiceden",
			TotalFormattedAmount: "2,000",
			TotalPrice:           "100000",
			Offers:               json.RawMessage(`[{"id":"o1"}]`),
		}, nil)

		result, err := uc.Quote(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "magiceden", result.BestMarketplace)
		assert.Equal(t, "100000", result.TotalPriceSats)
		assert.Equal(t, "50", result.PricePerUnit)
	})

	t.Run("unparsable amounts leave the ratio empty", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(&satsterminal.Quote{
			TotalFormattedAmount: "n/a",
			TotalPrice:           "100000",
		}, nil)

		result, err := uc.Quote(ctx, input)
		require.NoError(t, err)
		assert.Empty(t, result.PricePerUnit)
	})

	t.Run("expired quote surfaces the sentinel", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, &rest.APIError{Status: 410, Message: "Quote expired"})

		_, err := uc.Quote(ctx, input)
		assert.ErrorIs(t, err, usecase.ErrQuoteExpired)
	})

	t.Run("HTML error pages classify as unavailable", func(t *testing.T) {
		uc, client, _ := newSwapUseCase(t)

		client.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, &rest.APIError{Status: 502, Message: "upstream returned non-JSON response", NonJSON: true})

		_, err := uc.Quote(ctx, input)
		assert.ErrorIs(t, err, usecase.ErrUpstreamUnavailable)
	})
}

func TestSwapUseCase_Popular(t *testing.T) {
	ctx := t.Context()

	t.Run("serves the newest cache row", func(t *testing.T) {
		uc, _, popular := newSwapUseCase(t)

		popular.EXPECT().Latest(gomock.Any()).Return(&readmodel.PopularRunesRM{
			RunesData: json.RawMessage(`[{"name":"DOG"}]`),
		}, nil)

		raw, err := uc.Popular(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"DOG"}]`, string(raw))
	})

	t.Run("empty cache falls back to a live fetch without writing", func(t *testing.T) {
		uc, client, popular := newSwapUseCase(t)

		popular.EXPECT().Latest(gomock.Any()).Return(nil, notFoundErr())
		client.EXPECT().PopularTokens(gomock.Any()).Return(json.RawMessage(`[{"name":"DOG"}]`), nil)

		raw, err := uc.Popular(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"DOG"}]`, string(raw))
	})
}
