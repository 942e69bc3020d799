package services

import (
	"context"
	"errors"
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

type LoanService struct {
	workerPool          TaskSubmitter
	loanRepo            LoanRepository
	clientRepo          ClientRepository
	sequenceRepo        SequenceRepository
	producer            LedgerEventPublisher
	notificationService NotificationServiceInterface
	validation          *ValidationService
}

func NewLoanService(workerPool TaskSubmitter, loanRepo LoanRepository, clientRepo ClientRepository, sequenceRepo SequenceRepository, producer LedgerEventPublisher, notificationService NotificationServiceInterface, validation *ValidationService) *LoanService {
	return &LoanService{
		workerPool:          workerPool,
		loanRepo:            loanRepo,
		clientRepo:          clientRepo,
		sequenceRepo:        sequenceRepo,
		producer:            producer,
		notificationService: notificationService,
		validation:          validation,
	}
}

func (s *LoanService) CreateLoan(ctx context.Context, request models.CreateLoanRequest) (*models.CreateLoanResponse, error) {
	if err := s.validation.CheckLoanFields(ctx, request.Amount, request.Term, request.Rate); err != nil {
		return nil, err
	}

	if request.Date == "" {
		return nil, consts.ErrorMissingRequiredFields.WithField("date", "required")
	}
	dateInitial, err := utils.ParseRequestDate(request.Date)
	if err != nil {
		return nil, err
	}

	clientObjectId, err := primitive.ObjectIDFromHex(request.ClientId)
	if err != nil {
		return nil, consts.ErrorClientNotFound
	}
	client, err := s.clientRepo.ClientByFilter(bson.M{"_id": clientObjectId})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorClientNotFound
		}
		logger.Error(ctx, "Error fetching client %s: %v", request.ClientId, err)
		return nil, err
	}

	assessment, err := s.validation.CheckAdmission(ctx, client.ClientId)
	if err != nil {
		if errors.Is(err, consts.ErrorAdmissionDenied) {
			s.workerPool.Submit(func() {
				s.notificationService.NotifyClient(context.Background(), client.ClientId.Hex(), consts.NotificationLoanDenied, "", request.Amount)
			})
		}
		return nil, err
	}

	installment, err := engine.Installment(request.Amount, request.Rate, request.Term, assessment.RateAdjustment)
	if err != nil {
		return nil, err
	}

	sequence, err := s.sequenceRepo.NextSequence(ctx, consts.LoanNumberSequence)
	if err != nil {
		return nil, consts.ErrorSequenceUnavailable
	}

	loan := models.Loan{
		LoanId:         primitive.NewObjectID(),
		LoanNumber:     engine.FormatLoanNumber(sequence),
		ClientId:       client.ClientId,
		Amount:         request.Amount,
		Term:           request.Term,
		Rate:           request.Rate,
		RateAdjustment: assessment.RateAdjustment,
		Installment:    installment,
		DateInitial:    dateInitial,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.loanRepo.CreateLoan(ctx, loan); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Loan %s (%s) originated for client %s, installment %s",
		loan.LoanId.Hex(), loan.LoanNumber, client.ClientId.Hex(), installment)

	s.workerPool.Submit(func() {
		s.publishLoanCreated(loan)
	})

	return &models.CreateLoanResponse{
		LoanId:      loan.LoanId.Hex(),
		Installment: installment,
	}, nil
}

func (s *LoanService) publishLoanCreated(loan models.Loan) {
	ctx := context.Background()

	event := models.LedgerEvent{
		EventId:    uuid.NewString(),
		EventType:  consts.EventLoanCreated,
		LoanId:     loan.LoanId.Hex(),
		LoanNumber: loan.LoanNumber,
		ClientId:   loan.ClientId.Hex(),
		Amount:     loan.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.PublishLedgerEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish %s event for loan %s: %v", consts.EventLoanCreated, loan.LoanId.Hex(), err)
	}

	if err := s.notificationService.NotifyClient(ctx, loan.ClientId.Hex(), consts.NotificationLoanApproved, loan.LoanNumber, loan.Amount); err != nil {
		logger.Error(ctx, "Failed to notify client %s of loan approval: %v", loan.ClientId.Hex(), err)
	}
}
