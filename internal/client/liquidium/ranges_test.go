//go:build unit

package liquidium_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runes-gateway/internal/client/liquidium"
)

func TestParseOfferRanges(t *testing.T) {
	t.Run("top-level shape", func(t *testing.T) {
		raw := json.RawMessage(`{
			"valid_ranges": {
				"rune_amount": {"ranges": [{"min": "100", "max": "2000"}]},
				"loan_term_days": [14, 30]
			}
		}`)

		result, err := liquidium.ParseOfferRanges(raw)
		require.NoError(t, err)
		require.Len(t, result.Ranges, 1)
		assert.Equal(t, "100", result.Ranges[0].Min)
		assert.Equal(t, "2000", result.Ranges[0].Max)
		require.NotNil(t, result.LoanTermDays)
		assert.Equal(t, 14, *result.LoanTermDays)
	})

	t.Run("nested runeDetails shape", func(t *testing.T) {
		raw := json.RawMessage(`{
			"runeDetails": {
				"valid_ranges": {
					"rune_amount": {"ranges": [{"min": "5", "max": "10"}, {"min": "1", "max": "7"}]}
				}
			}
		}`)

		result, err := liquidium.ParseOfferRanges(raw)
		require.NoError(t, err)
		assert.Len(t, result.Ranges, 2)
		assert.Nil(t, result.LoanTermDays)
	})

	t.Run("unrecognized shape fails loudly", func(t *testing.T) {
		for name, raw := range map[string]string{
			"empty object":   `{}`,
			"missing ranges": `{"valid_ranges": {}}`,
			"wrong nesting":  `{"data": {"ranges": []}}`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := liquidium.ParseOfferRanges(json.RawMessage(raw))
				assert.True(t, errors.Is(err, liquidium.ErrUnrecognizedRangeShape))
			})
		}
	})
}

func TestGlobalBounds(t *testing.T) {
	t.Run("global min and max across ranges", func(t *testing.T) {
		minAmount, maxAmount, err := liquidium.GlobalBounds([]liquidium.OfferRange{
			{Min: "500", Max: "900"},
			{Min: "100", Max: "2000"},
			{Min: "700", Max: "800"},
		})
		require.NoError(t, err)
		assert.Equal(t, "100", minAmount)
		assert.Equal(t, "2000", maxAmount)
	})

	t.Run("values beyond 2^53 compare exactly", func(t *testing.T) {
		// Both larger than 2^53 = 9007199254740992; a float comparison would
		// collapse them.
		minAmount, maxAmount, err := liquidium.GlobalBounds([]liquidium.OfferRange{
			{Min: "9007199254740993", Max: "9007199254740994"},
			{Min: "9007199254740992", Max: "9007199254740995"},
		})
		require.NoError(t, err)
		assert.Equal(t, "9007199254740992", minAmount)
		assert.Equal(t, "9007199254740995", maxAmount)
	})

	t.Run("bounds hold for every entry", func(t *testing.T) {
		ranges := []liquidium.OfferRange{
			{Min: "18446744073709551616", Max: "36893488147419103232"},
			{Min: "18446744073709551615", Max: "36893488147419103231"},
			{Min: "20000000000000000000", Max: "40000000000000000000"},
		}

		minAmount, maxAmount, err := liquidium.GlobalBounds(ranges)
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", minAmount)
		assert.Equal(t, "40000000000000000000", maxAmount)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, _, err := liquidium.GlobalBounds(nil)
		assert.Error(t, err)
	})

	t.Run("non-integer amount is an error", func(t *testing.T) {
		_, _, err := liquidium.GlobalBounds([]liquidium.OfferRange{{Min: "1.5", Max: "2"}})
		assert.True(t, errors.Is(err, liquidium.ErrInvalidRangeAmount))
	})
}
