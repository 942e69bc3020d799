package consts

import "github.com/shopspring/decimal"

// Risk policy tunables. The adjustment is added to a loan's nominal rate
// before the per-period rate is derived.
var (
	// Discount for a history with no missed payments
	RateAdjustmentClean = decimal.RequireFromString("-0.002")
	// Premium once any payment has been missed
	RateAdjustmentMissed = decimal.RequireFromString("0.004")
)

// IndebtedMissedThreshold is the missed-payment count at which a loan
// with a positive balance past its expiration blocks new originations.
const IndebtedMissedThreshold = 3
