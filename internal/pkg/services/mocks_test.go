package services

import (
	"context"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils/worker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) CreateClient(ctx context.Context, client models.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) ClientByFilter(filter interface{}) (*models.Client, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) CountClients(filter interface{}) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) CreateLoan(ctx context.Context, loan models.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) LoanByFilter(filter interface{}) (*models.Loan, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *MockLoanRepository) LoansByFilter(filter interface{}) ([]models.Loan, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) AppendPayment(ctx context.Context, payment models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) PaymentsByFilter(filter interface{}) ([]models.Payment, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockLedgerEventPublisher struct {
	mock.Mock
}

func (m *MockLedgerEventPublisher) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyClient(ctx context.Context, clientId string, event string, loanNumber string, amount decimal.Decimal) error {
	args := m.Called(ctx, clientId, event, loanNumber, amount)
	return args.Error(0)
}

type MockLoanLocker struct {
	mock.Mock
}

func (m *MockLoanLocker) Acquire(ctx context.Context, loanId string) (string, error) {
	args := m.Called(ctx, loanId)
	return args.String(0), args.Error(1)
}

func (m *MockLoanLocker) Release(ctx context.Context, loanId string, token string) {
	m.Called(ctx, loanId, token)
}

// inlineSubmitter runs submitted tasks synchronously so tests can assert
// on the side effects of background work.
type inlineSubmitter struct{}

func (inlineSubmitter) Submit(task worker.Task) {
	task()
}
