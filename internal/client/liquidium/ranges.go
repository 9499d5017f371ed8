package liquidium

import (
	"math/big"

	"github.com/goccy/go-json"

	"runes-gateway/internal/pkg/errs"
)

// The offer-range endpoint has shipped two response layouts: the range block
// at the top level, and the same block nested under "runeDetails". Both are
// decoded into one normalized form; anything else fails loudly instead of
// silently yielding zero ranges.
var (
	ErrUnrecognizedRangeShape = errs.New("unrecognized offer-range response shape")
	ErrInvalidRangeAmount     = errs.New("offer range amount is not a valid integer")
)

// OfferRange is one advertised min/max collateral quantity. Amounts are
// decimal strings and may exceed 2^53, so they are only ever compared as big
// integers.
type OfferRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type OfferRanges struct {
	Ranges       []OfferRange
	LoanTermDays *int
}

type rangeBlock struct {
	ValidRanges *struct {
		RuneAmount *struct {
			Ranges []OfferRange `json:"ranges"`
		} `json:"rune_amount"`
		LoanTermDays []int `json:"loan_term_days"`
	} `json:"valid_ranges"`
}

// ParseOfferRanges normalizes a raw offer-range response.
func ParseOfferRanges(raw json.RawMessage) (*OfferRanges, error) {
	var direct rangeBlock
	if err := json.Unmarshal(raw, &direct); err == nil {
		if result := direct.normalize(); result != nil {
			return result, nil
		}
	}

	var nested struct {
		RuneDetails *rangeBlock `json:"runeDetails"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.RuneDetails != nil {
		if result := nested.RuneDetails.normalize(); result != nil {
			return result, nil
		}
	}

	return nil, ErrUnrecognizedRangeShape
}

func (b *rangeBlock) normalize() *OfferRanges {
	if b.ValidRanges == nil || b.ValidRanges.RuneAmount == nil {
		return nil
	}

	result := &OfferRanges{Ranges: b.ValidRanges.RuneAmount.Ranges}
	if len(b.ValidRanges.LoanTermDays) > 0 {
		days := b.ValidRanges.LoanTermDays[0]
		result.LoanTermDays = &days
	}
	return result
}

// GlobalBounds returns the minimum of all minimums and the maximum of all
// maximums across the ranges, compared as arbitrary-precision integers.
func GlobalBounds(ranges []OfferRange) (minAmount, maxAmount string, err error) {
	if len(ranges) == 0 {
		return "", "", errs.New("no ranges to compare")
	}

	var globalMin, globalMax *big.Int
	for _, r := range ranges {
		minVal, ok := new(big.Int).SetString(r.Min, 10)
		if !ok {
			return "", "", errs.Wrap(ErrInvalidRangeAmount, "min "+r.Min)
		}
		maxVal, ok := new(big.Int).SetString(r.Max, 10)
		if !ok {
			return "", "", errs.Wrap(ErrInvalidRangeAmount, "max "+r.Max)
		}

		if globalMin == nil || minVal.Cmp(globalMin) < 0 {
			globalMin = minVal
		}
		if globalMax == nil || maxVal.Cmp(globalMax) > 0 {
			globalMax = maxVal
		}
	}

	return globalMin.String(), globalMax.String(), nil
}
