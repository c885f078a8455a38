package entity

import "github.com/shopspring/decimal"

// EffectivePrice resolves the unit price actually charged.
// The discounted price wins only when it is present and numerically different from the base price,
// so "100.0" and "100" are the same price.
func EffectivePrice(price decimal.Decimal, discounted *decimal.Decimal) decimal.Decimal {
	if discounted != nil && !discounted.Equal(price) {
		return *discounted
	}

	return price
}
