package services

import (
	"context"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/engine"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BalanceService struct {
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
}

func NewBalanceService(loanRepo LoanRepository, paymentRepo PaymentRepository) *BalanceService {
	return &BalanceService{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
	}
}

// Balance evaluates the outstanding balance at the given date base. An
// empty date means now. When the ledger cannot be read the loan is
// reported fully outstanding rather than failing the request.
func (s *BalanceService) Balance(ctx context.Context, loanId string, dateBase string) (*models.BalanceResponse, error) {
	loanObjectId, err := primitive.ObjectIDFromHex(loanId)
	if err != nil {
		return nil, consts.ErrorLoanNotFound
	}

	loan, err := s.loanRepo.LoanByFilter(bson.M{"_id": loanObjectId})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorLoanNotFound
		}
		logger.Error(ctx, "Error fetching loan %s: %v", loanId, err)
		return nil, err
	}

	date := time.Now().UTC()
	if dateBase != "" {
		date, err = utils.ParseRequestDate(dateBase)
		if err != nil {
			return nil, err
		}
	}

	payments, err := s.paymentRepo.PaymentsByFilter(bson.M{"loanId": loanObjectId})
	if err != nil && err != mongo.ErrNoDocuments {
		logger.Error(ctx, "Ledger unavailable for loan %s, reporting fully outstanding: %v", loanId, err)
		return &models.BalanceResponse{Balance: engine.TotalPayable(*loan)}, nil
	}

	return &models.BalanceResponse{Balance: engine.Balance(*loan, payments, date)}, nil
}
