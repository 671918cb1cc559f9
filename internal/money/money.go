package money

import "github.com/shopspring/decimal"

const minorDigits = 2

// FormatMinor renders a minor-unit amount with two decimal places.
func FormatMinor(value int64) string {
	return decimal.New(value, -minorDigits).StringFixed(minorDigits)
}
