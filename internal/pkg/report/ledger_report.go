package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/otel"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentRepo interface {
	PaymentsByFilter(filter interface{}) ([]models.Payment, error)
}

type LoanRepo interface {
	LoanByFilter(filter interface{}) (*models.Loan, error)
}

type SFTPClientInterface interface {
	UploadFileToSFTP(localFilePath, remoteFilePath string) error
	DeleteLocalFile(filePath string) error
}

// LedgerReportService renders the recent ledger activity as CSV and
// ships it to the operations SFTP drop.
type LedgerReportService struct {
	paymentRepo PaymentRepo
	loanRepo    LoanRepo
	sftpClient  SFTPClientInterface
}

func NewLedgerReportService(paymentRepo PaymentRepo, loanRepo LoanRepo, sftpClient SFTPClientInterface) *LedgerReportService {
	return &LedgerReportService{
		paymentRepo: paymentRepo,
		loanRepo:    loanRepo,
		sftpClient:  sftpClient,
	}
}

// LedgerActivityReport writes payments recorded in the report window to
// a CSV file and uploads it. Returns the number of rows shipped.
func (s *LedgerReportService) LedgerActivityReport(ctx context.Context) (int, error) {
	// Background runs get no HTTP span, start one per report.
	ctx, span := otel.GetTracer().Start(ctx, "ledger-activity-report")
	defer span.End()

	now := time.Now().UTC()
	startTime := now.Add(-time.Duration(configs.REPORT_EVERY_X_HOURS) * time.Hour)

	payments, err := s.paymentRepo.PaymentsByFilter(bson.M{"createdAt": bson.M{"$gte": startTime}})
	if err != nil {
		return 0, err
	}
	if len(payments) == 0 {
		logger.Info(ctx, "No ledger activity since %s, skipping report", startTime.Format(time.RFC3339))
		return 0, nil
	}

	filename, err := s.writeLedgerCSV(ctx, payments, startTime)
	if err != nil {
		return 0, err
	}

	localFilePath := filepath.Join(configs.REPORT_DIRECTORY_PATH, filename)
	remoteFilePath := filepath.Join(configs.SFTP_REMOTE_FILE_PATH, filename)
	if err := s.sftpClient.UploadFileToSFTP(localFilePath, remoteFilePath); err != nil {
		logger.Error(ctx, "Failed to upload ledger report: %v", err)
		return 0, err
	}

	if err := s.sftpClient.DeleteLocalFile(localFilePath); err != nil {
		logger.Warn(ctx, "Failed to remove local report file %s: %v", localFilePath, err)
	}

	logger.Info(ctx, "Ledger report %s shipped with %d rows", filename, len(payments))
	return len(payments), nil
}

func (s *LedgerReportService) writeLedgerCSV(ctx context.Context, payments []models.Payment, startTime time.Time) (string, error) {
	startDate := startTime.Format(consts.ReportFileNameDateFormat)
	filename := fmt.Sprintf("ledger_report_%s.csv", startDate)

	directoryPath := configs.REPORT_DIRECTORY_PATH
	if err := os.MkdirAll(directoryPath, os.ModePerm); err != nil {
		logger.Error(ctx, "failed at os.MkdirAll > %v", err)
		return "", err
	}

	fullFilePath := filepath.Join(directoryPath, filename)
	file, err := os.Create(fullFilePath)
	if err != nil {
		logger.Error(ctx, "failed at os.Create > %v", err)
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"PaymentId", "LoanId", "LoanNumber", "ClientId", "Status",
		"PaymentDate", "Amount", "AmountExpected", "RecordedAt",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// loans repeat across payments, fetch each once
	loans := make(map[string]*models.Loan)
	for _, payment := range payments {
		loanKey := payment.LoanId.Hex()
		loan, ok := loans[loanKey]
		if !ok {
			loan, err = s.loanRepo.LoanByFilter(bson.M{"_id": payment.LoanId})
			if err != nil {
				logger.Warn(ctx, "Skipping payment %s, loan %s unavailable: %v", payment.PaymentId.Hex(), loanKey, err)
				continue
			}
			loans[loanKey] = loan
		}

		record := []string{
			payment.PaymentId.Hex(),
			loanKey,
			loan.LoanNumber,
			loan.ClientId.Hex(),
			string(payment.Status),
			payment.Date.Format(time.RFC3339),
			payment.Amount.String(),
			payment.AmountExpected.String(),
			payment.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	logger.Info(ctx, "Ledger activity written to %s", filename)
	return filename, nil
}

// RunPeriodicReports blocks, shipping one report per cadence window
// until the context is cancelled.
func (s *LedgerReportService) RunPeriodicReports(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(configs.REPORT_EVERY_X_HOURS) * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.LedgerActivityReport(ctx); err != nil {
				logger.Error(ctx, "Ledger report run failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
