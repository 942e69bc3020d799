package services

import (
	"context"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/engine"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentService struct {
	workerPool          TaskSubmitter
	loanRepo            LoanRepository
	paymentRepo         PaymentRepository
	loanLocker          LoanLocker
	producer            LedgerEventPublisher
	notificationService NotificationServiceInterface
}

func NewPaymentService(workerPool TaskSubmitter, loanRepo LoanRepository, paymentRepo PaymentRepository, loanLocker LoanLocker, producer LedgerEventPublisher, notificationService NotificationServiceInterface) *PaymentService {
	return &PaymentService{
		workerPool:          workerPool,
		loanRepo:            loanRepo,
		paymentRepo:         paymentRepo,
		loanLocker:          loanLocker,
		producer:            producer,
		notificationService: notificationService,
	}
}

// RecordPayment validates and appends one ledger entry. The whole
// admission check runs under the per-loan lock so two concurrent
// payments cannot both pass the balance check.
func (s *PaymentService) RecordPayment(ctx context.Context, loanId string, request models.CreatePaymentRequest) (*models.CreatePaymentResponse, error) {
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

	status, ok := models.ParsePaymentStatus(request.Payment)
	if !ok {
		return nil, consts.ErrorInvalidPaymentStatus.WithField("payment", request.Payment)
	}

	if request.Date == "" {
		return nil, consts.ErrorMissingRequiredFields.WithField("date", "required")
	}
	paymentDate, err := utils.ParseRequestDate(request.Date)
	if err != nil {
		return nil, err
	}

	if !request.Amount.IsPositive() {
		return nil, consts.ErrorInvalidAmount.WithField("amount", "must be greater than zero")
	}

	token, err := s.loanLocker.Acquire(ctx, loanId)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, consts.ErrorPaymentInProgress
	}
	defer s.loanLocker.Release(ctx, loanId, token)

	payments, err := s.paymentRepo.PaymentsByFilter(bson.M{"loanId": loanObjectId})
	if err != nil && err != mongo.ErrNoDocuments {
		logger.Error(ctx, "Error fetching ledger for loan %s: %v", loanId, err)
		return nil, err
	}

	if paymentDate.Before(loan.DateInitial) {
		return nil, consts.ErrorPaymentBeforeLoan
	}

	now := time.Now().UTC()
	if status == models.PaymentMade {
		balance := engine.Balance(*loan, payments, now)
		if request.Amount.GreaterThan(balance) {
			logger.Warn(ctx, "Payment of %s over balance %s on loan %s", request.Amount, balance, loanId)
			return nil, consts.ErrorPaymentOverBalance
		}
	}

	expected := engine.NextExpectedInstallment(*loan, payments, now)

	payment := models.Payment{
		PaymentId:      primitive.NewObjectID(),
		LoanId:         loan.LoanId,
		Status:         status,
		Date:           paymentDate,
		Amount:         request.Amount,
		AmountExpected: expected,
		CreatedAt:      now,
	}

	if err := s.paymentRepo.AppendPayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Payment %s (%s) of %s recorded on loan %s", payment.PaymentId.Hex(), status, request.Amount, loanId)

	s.workerPool.Submit(func() {
		s.publishPaymentRecorded(*loan, payment)
	})

	return &models.CreatePaymentResponse{
		Payment:        string(status),
		ReceivedAmount: request.Amount,
		ExpectedAmount: expected,
	}, nil
}

func (s *PaymentService) publishPaymentRecorded(loan models.Loan, payment models.Payment) {
	ctx := context.Background()

	event := models.LedgerEvent{
		EventId:    uuid.NewString(),
		EventType:  consts.EventPaymentRecorded,
		LoanId:     loan.LoanId.Hex(),
		LoanNumber: loan.LoanNumber,
		ClientId:   loan.ClientId.Hex(),
		Amount:     payment.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishLedgerEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish %s event for loan %s: %v", consts.EventPaymentRecorded, loan.LoanId.Hex(), err)
	}

	notificationEvent := consts.NotificationPaymentReceived
	if payment.Status == models.PaymentMissed {
		notificationEvent = consts.NotificationPaymentMissed
	}
	if err := s.notificationService.NotifyClient(ctx, loan.ClientId.Hex(), notificationEvent, loan.LoanNumber, payment.Amount); err != nil {
		logger.Error(ctx, "Failed to notify client %s of payment: %v", loan.ClientId.Hex(), err)
	}
}
