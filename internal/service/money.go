package service

import "github.com/shopspring/decimal"

// FormatCurrency renders integer cents as a dollar string: 1250 -> "$12.50".
func FormatCurrency(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// CentsToDollars converts stored cents to a decimal dollar value: 1250 -> 12.5.
// Used for edit forms, which need a number rather than a display string.
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// DollarsToCents converts a form dollar amount to integer cents without
// floating-point rounding: 12.50 -> 1250.
func DollarsToCents(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Mul(decimal.NewFromInt(100)).IntPart()
}
