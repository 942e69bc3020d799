package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is a closed two-value tag. Historic datasets carried the
// short forms "MD"/"MS"; those are accepted on read and normalized to
// the canonical values here.
type PaymentStatus string

const (
	PaymentMade   PaymentStatus = "made"
	PaymentMissed PaymentStatus = "missed"
)

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "made", "md":
		return PaymentMade, true
	case "missed", "ms":
		return PaymentMissed, true
	}
	return "", false
}

// Payment is one entry of a loan's ledger. Entries are append-only and
// never mutated. AmountExpected is the re-amortized next instalment as
// it stood when this payment was recorded.
type Payment struct {
	PaymentId      primitive.ObjectID `bson:"_id"`
	LoanId         primitive.ObjectID `bson:"loanId"`
	Status         PaymentStatus      `bson:"status"`
	Date           time.Time          `bson:"date"`
	Amount         decimal.Decimal    `bson:"amount"`
	AmountExpected decimal.Decimal    `bson:"amountExpected"`
	CreatedAt      time.Time          `bson:"createdAt"`
}
