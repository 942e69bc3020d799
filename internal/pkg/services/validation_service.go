package services

import (
	"context"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/engine"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ValidationService struct {
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
}

func NewValidationService(loanRepo LoanRepository, paymentRepo PaymentRepository) *ValidationService {
	return &ValidationService{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
	}
}

// CheckLoanFields rejects a loan request whose terms cannot be priced.
// All field checks run before any write.
func (v *ValidationService) CheckLoanFields(ctx context.Context, amount decimal.Decimal, term int, rate decimal.Decimal) error {
	if !amount.IsPositive() {
		logger.Warn(ctx, "Loan amount not positive: %s", amount)
		return consts.ErrorInvalidAmount.WithField("amount", "must be greater than zero")
	}
	if term < 1 {
		logger.Warn(ctx, "Loan term not positive: %d", term)
		return consts.ErrorInvalidTerm.WithField("term", "must be at least one period")
	}
	if !rate.IsPositive() {
		logger.Warn(ctx, "Loan rate not positive: %s", rate)
		return consts.ErrorInvalidRate.WithField("rate", "must be greater than zero")
	}
	return nil
}

// ClientHistory loads every loan of the client together with its full
// payment ledger, oldest loan first.
func (v *ValidationService) ClientHistory(ctx context.Context, clientId primitive.ObjectID) ([]models.LoanHistory, error) {
	loans, err := v.loanRepo.LoansByFilter(bson.M{"clientId": clientId})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error(ctx, "Error fetching loans for client %s: %v", clientId.Hex(), err)
		return nil, err
	}

	history := make([]models.LoanHistory, 0, len(loans))
	for _, loan := range loans {
		payments, err := v.paymentRepo.PaymentsByFilter(bson.M{"loanId": loan.LoanId})
		if err != nil && err != mongo.ErrNoDocuments {
			logger.Error(ctx, "Error fetching payments for loan %s: %v", loan.LoanId.Hex(), err)
			return nil, err
		}
		history = append(history, models.LoanHistory{Loan: loan, Payments: payments})
	}
	return history, nil
}

// CheckAdmission runs the risk policy over the client's history. The
// returned assessment carries the rate adjustment for an admitted loan.
func (v *ValidationService) CheckAdmission(ctx context.Context, clientId primitive.ObjectID) (*engine.Assessment, error) {
	history, err := v.ClientHistory(ctx, clientId)
	if err != nil {
		return nil, err
	}

	assessment := engine.Assess(history)
	if !assessment.Eligible {
		logger.Info(ctx, "Client %s denied: indebted on loans %v", clientId.Hex(), assessment.BlockingLoans)
		return &assessment, consts.ErrorAdmissionDenied
	}
	return &assessment, nil
}
