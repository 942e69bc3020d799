package services

import (
	"context"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils/worker"

	"github.com/shopspring/decimal"
)

type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) error
	ClientByFilter(filter interface{}) (*models.Client, error)
	CountClients(filter interface{}) (int64, error)
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan models.Loan) error
	LoanByFilter(filter interface{}) (*models.Loan, error)
	LoansByFilter(filter interface{}) ([]models.Loan, error)
}

type PaymentRepository interface {
	AppendPayment(ctx context.Context, payment models.Payment) error
	PaymentsByFilter(filter interface{}) ([]models.Payment, error)
}

type SequenceRepository interface {
	NextSequence(ctx context.Context, name string) (int64, error)
}

type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}

type NotificationServiceInterface interface {
	NotifyClient(ctx context.Context, clientId string, event string, loanNumber string, amount decimal.Decimal) error
}

type LoanLocker interface {
	Acquire(ctx context.Context, loanId string) (string, error)
	Release(ctx context.Context, loanId string, token string)
}

type TaskSubmitter interface {
	Submit(task worker.Task)
}

type ClientServiceInterface interface {
	CreateClient(ctx context.Context, request models.CreateClientRequest) (*models.CreateClientResponse, error)
	GetClient(ctx context.Context, clientId string) (*models.ClientResponse, error)
}

type LoanServiceInterface interface {
	CreateLoan(ctx context.Context, request models.CreateLoanRequest) (*models.CreateLoanResponse, error)
}

type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, loanId string, request models.CreatePaymentRequest) (*models.CreatePaymentResponse, error)
}

type BalanceServiceInterface interface {
	Balance(ctx context.Context, loanId string, dateBase string) (*models.BalanceResponse, error)
}
