package engine

import (
	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Assessment is the outcome of the risk policy over a client's full loan
// history: the rate perturbation applied to a new origination and the
// admission signal.
type Assessment struct {
	RateAdjustment decimal.Decimal
	Eligible       bool
	// Display numbers of the loans that triggered a denial
	BlockingLoans []string
}

// Assess derives the rate adjustment and the admission signal from every
// loan the client holds, including the one being originated when
// payments already exist against it.
//
// Pricing: no history at all means no adjustment; a history with zero
// missed payments earns a discount; any missed payment attracts the risk
// premium.
//
// Admission: the client is denied when any loan has accumulated at least
// IndebtedMissedThreshold missed payments and still carries a positive
// balance at its expiration date. Aggregating over every qualifying loan
// (rather than the last one inspected) is a deliberate policy decision.
func Assess(history []models.LoanHistory) Assessment {
	if len(history) == 0 {
		return Assessment{RateAdjustment: decimal.Zero, Eligible: true}
	}

	totalMissed := 0
	var blocking []string

	for _, h := range history {
		missed := MissedCount(h.Payments)
		totalMissed += missed

		if missed < consts.IndebtedMissedThreshold {
			continue
		}
		balanceAtExpiration := Balance(h.Loan, h.Payments, h.Loan.Expiration())
		if money.IsPositive(balanceAtExpiration) {
			blocking = append(blocking, h.Loan.LoanNumber)
		}
	}

	adjustment := consts.RateAdjustmentClean
	if totalMissed > 0 {
		adjustment = consts.RateAdjustmentMissed
	}

	return Assessment{
		RateAdjustment: adjustment,
		Eligible:       len(blocking) == 0,
		BlockingLoans:  blocking,
	}
}
