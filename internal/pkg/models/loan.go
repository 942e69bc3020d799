package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loan is one originated instalment loan. RateAdjustment and Installment
// are derived from the client's payment history once, at origination,
// and are never recomputed afterwards.
type Loan struct {
	LoanId         primitive.ObjectID `bson:"_id"`
	LoanNumber     string             `bson:"loanNumber"`
	ClientId       primitive.ObjectID `bson:"clientId"`
	Amount         decimal.Decimal    `bson:"amount"`
	Term           int                `bson:"term"`
	Rate           decimal.Decimal    `bson:"rate"`
	RateAdjustment decimal.Decimal    `bson:"rateAdjustment"`
	Installment    decimal.Decimal    `bson:"installment"`
	DateInitial    time.Time          `bson:"dateInitial"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// Expiration is the date the last instalment falls due. A period is one
// calendar month.
func (l *Loan) Expiration() time.Time {
	return l.DateInitial.AddDate(0, l.Term, 0)
}

// LoanHistory is the snapshot of one loan and its recorded payments that
// the engine computes over. The ledger slice is append-only and ordered
// by record time.
type LoanHistory struct {
	Loan     Loan
	Payments []Payment
}
