package parser

import (
	"github.com/shopspring/decimal"
)

// tierMultipliers are the fixed markup tiers applied to a unit's trade value.
var tierMultipliers = [4]float64{1.15, 1.20, 1.25, 1.30}

// PriceTier is one derived price point for an inventory unit.
type PriceTier struct {
	Multiplier float64
	// Price is trade value times the multiplier, rounded to 2 places.
	Price float64
	// Profit is Price minus unit cost, rounded to 2 places.
	Profit float64
}

// PricingTiers computes the four fixed pricing tiers from a trade value and
// unit cost. Following the source workbook, a zero value is treated the same
// as an absent one: the caller only invokes this when both inputs are
// truthy. Rounding is half away from zero (plain half-up for the
// non-negative values in play); see round2.
func PricingTiers(trade, cost float64) [4]PriceTier {
	var tiers [4]PriceTier
	for i, m := range tierMultipliers {
		price := round2(decimal.NewFromFloat(trade).Mul(decimal.NewFromFloat(m)))
		tiers[i] = PriceTier{
			Multiplier: m,
			Price:      price,
			Profit:     round2(decimal.NewFromFloat(price).Sub(decimal.NewFromFloat(cost))),
		}
	}
	return tiers
}

// Spread returns a-b rounded to 2 places. Used for both the trade-vs-cost
// differential and the retail spread.
func Spread(a, b float64) float64 {
	return round2(decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)))
}

// ResponseRate returns totalResponses / piecesSent rounded to 4 places, or 0
// when either count is zero or missing.
func ResponseRate(totalResponses, piecesSent int) float64 {
	if totalResponses == 0 || piecesSent == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(totalResponses)).
		DivRound(decimal.NewFromInt(int64(piecesSent)), 8).
		Round(4)
	return rate.InexactFloat64()
}

// round2 rounds half away from zero to 2 decimal places. Stored currency
// amounts depend on this being consistent across the pipeline.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
