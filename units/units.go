package units

import "github.com/shopspring/decimal"

// BagsPerTon is the fixed packing ratio used for every quantity and price.
const BagsPerTon = 20

var (
	bagsPerTon = decimal.NewFromInt(BagsPerTon)

	// QuantityStep is the smallest orderable increment in tons.
	QuantityStep = decimal.RequireFromString("0.5")

	// MaxQuantity caps a single line so bag counts stay well inside int64.
	MaxQuantity = decimal.NewFromInt(10000)
)

// IsValidQuantity reports whether tons is positive, at most MaxQuantity and
// a whole number of steps.
func IsValidQuantity(tons decimal.Decimal) bool {
	return tons.IsPositive() &&
		tons.LessThanOrEqual(MaxQuantity) &&
		tons.Mod(QuantityStep).IsZero()
}

// BagsFor returns the number of bags billed for a quantity in tons.
// A partial bag is billed as a whole bag.
func BagsFor(tons decimal.Decimal) int64 {
	if !tons.IsPositive() {
		return 0
	}
	return tons.Mul(bagsPerTon).Ceil().IntPart()
}

// LineTotal is bags times the per-bag rate.
func LineTotal(bags int64, pricePerBag decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(bags).Mul(pricePerBag)
}

// PricePerTon converts a per-bag price to the per-ton display price.
func PricePerTon(pricePerBag decimal.Decimal) decimal.Decimal {
	return pricePerBag.Mul(bagsPerTon)
}
