package report

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) PaymentsByFilter(filter interface{}) ([]models.Payment, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) LoanByFilter(filter interface{}) (*models.Loan, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

type MockSFTPClient struct {
	mock.Mock
}

func (m *MockSFTPClient) UploadFileToSFTP(localFilePath, remoteFilePath string) error {
	args := m.Called(localFilePath, remoteFilePath)
	return args.Error(0)
}

func (m *MockSFTPClient) DeleteLocalFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}

func TestLedgerActivityReport(t *testing.T) {
	configs.REPORT_DIRECTORY_PATH = t.TempDir()

	paymentRepo := new(MockPaymentRepo)
	loanRepo := new(MockLoanRepo)
	sftpClient := new(MockSFTPClient)
	service := NewLedgerReportService(paymentRepo, loanRepo, sftpClient)

	loanId := primitive.NewObjectID()
	loan := &models.Loan{
		LoanId:     loanId,
		LoanNumber: "000-0000-0000-0001",
		ClientId:   primitive.NewObjectID(),
	}
	payments := []models.Payment{
		{
			PaymentId:      primitive.NewObjectID(),
			LoanId:         loanId,
			Status:         models.PaymentMade,
			Date:           time.Now().UTC(),
			Amount:         decimal.RequireFromString("85.60"),
			AmountExpected: decimal.RequireFromString("85.60"),
			CreatedAt:      time.Now().UTC(),
		},
		{
			PaymentId:      primitive.NewObjectID(),
			LoanId:         loanId,
			Status:         models.PaymentMissed,
			Date:           time.Now().UTC(),
			Amount:         decimal.RequireFromString("85.60"),
			AmountExpected: decimal.RequireFromString("85.60"),
			CreatedAt:      time.Now().UTC(),
		},
	}

	paymentRepo.On("PaymentsByFilter", mock.Anything).Return(payments, nil)
	// one fetch for two payments of the same loan
	loanRepo.On("LoanByFilter", mock.Anything).Return(loan, nil).Once()

	var uploadedPath string
	sftpClient.On("UploadFileToSFTP", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploadedPath = args.String(0)

			file, err := os.Open(uploadedPath)
			assert.NoError(t, err)
			defer file.Close()

			rows, err := csv.NewReader(file).ReadAll()
			assert.NoError(t, err)
			assert.Len(t, rows, 3)
			assert.Equal(t, "000-0000-0000-0001", rows[1][2])
			assert.Equal(t, "made", rows[1][4])
			assert.Equal(t, "missed", rows[2][4])
		}).
		Return(nil)
	sftpClient.On("DeleteLocalFile", mock.Anything).Return(nil)

	rows, err := service.LedgerActivityReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, rows)
	loanRepo.AssertExpectations(t)
	sftpClient.AssertExpectations(t)
}

func TestLedgerActivityReportNoActivity(t *testing.T) {
	configs.REPORT_DIRECTORY_PATH = t.TempDir()

	paymentRepo := new(MockPaymentRepo)
	sftpClient := new(MockSFTPClient)
	service := NewLedgerReportService(paymentRepo, new(MockLoanRepo), sftpClient)

	paymentRepo.On("PaymentsByFilter", mock.Anything).Return([]models.Payment{}, nil)

	rows, err := service.LedgerActivityReport(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, rows)
	sftpClient.AssertNotCalled(t, "UploadFileToSFTP", mock.Anything, mock.Anything)
}
