// Package money centralizes the quantization rule every monetary
// computation in the service must go through. Amounts are fixed-point
// decimals with two places; no float64 is used for balances or
// instalments.
package money

import "github.com/shopspring/decimal"

// Places is the fixed precision of every stored monetary value.
const Places = 2

// Quantize truncates toward zero at two decimal places. All amounts in
// this system are positive, so truncation and floor coincide; truncation
// is the pinned rule should credits ever make the two diverge.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.RoundDown(Places)
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
