// Package engine holds the pure computations of the lending core:
// annuity instalments, risk-adjusted pricing, ledger balances and loan
// display numbers. Functions here operate on snapshots handed in by the
// caller and perform no I/O; persistence, locking and the HTTP surface
// live elsewhere.
package engine

import (
	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Installment computes the constant periodic payment of an annuity loan:
//
//	r = (rate + adjustment) / term
//	installment = (r + r / ((1+r)^term − 1)) * amount
//
// quantized with the money package rule. Deriving the per-period rate
// from the term, rather than a hard-coded 12, lets the same formula
// serve loans of arbitrary period count.
func Installment(amount, rate decimal.Decimal, term int, adjustment decimal.Decimal) (decimal.Decimal, error) {
	if term <= 0 {
		return decimal.Zero, consts.ErrorInvalidTerm
	}

	periods := decimal.NewFromInt(int64(term))
	r := rate.Add(adjustment).Div(periods)

	onePlusR := one.Add(r)
	if onePlusR.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, consts.ErrorInvalidPeriodicRate
	}

	// Adjustment can cancel the rate out exactly; an interest-free loan
	// amortizes as an even split.
	if r.IsZero() {
		return money.Quantize(amount.Div(periods)), nil
	}

	compounded := onePlusR.Pow(periods)
	installment := r.Add(r.Div(compounded.Sub(one))).Mul(amount)

	return money.Quantize(installment), nil
}
