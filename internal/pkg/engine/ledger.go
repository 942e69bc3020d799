package engine

import (
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// TotalPayable is the full amount owed over the life of the loan,
// instalment times term. It is also the balance of a loan with no
// payments recorded.
func TotalPayable(loan models.Loan) decimal.Decimal {
	return loan.Installment.Mul(decimal.NewFromInt(int64(loan.Term)))
}

// Balance is the outstanding amount as of dateBase: total payable minus
// the made payments dated on or before it. Missed payments never reduce
// the balance.
func Balance(loan models.Loan, payments []models.Payment, dateBase time.Time) decimal.Decimal {
	balance := TotalPayable(loan)
	for _, p := range payments {
		if p.Status != models.PaymentMade {
			continue
		}
		if p.Date.After(dateBase) {
			continue
		}
		balance = balance.Sub(p.Amount)
	}
	return money.Quantize(balance)
}

// NextExpectedInstallment re-amortizes the remaining balance over the
// remaining period count at the moment a payment event is recorded.
// Every recorded payment, made or missed, consumes a period. The result
// is snapshotted onto the payment being recorded; it is never recomputed
// for older entries. Once no periods remain, what is expected is simply
// whatever balance is left.
func NextExpectedInstallment(loan models.Loan, payments []models.Payment, now time.Time) decimal.Decimal {
	balance := Balance(loan, payments, now)

	remaining := loan.Term - len(payments)
	if remaining <= 0 {
		return balance
	}

	return money.Quantize(balance.Div(decimal.NewFromInt(int64(remaining))))
}

// MissedCount tallies missed payments on one loan's ledger.
func MissedCount(payments []models.Payment) int {
	missed := 0
	for _, p := range payments {
		if p.Status == models.PaymentMissed {
			missed++
		}
	}
	return missed
}
