package engine

import (
	"testing"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceLoan(t *testing.T) models.Loan {
	t.Helper()

	amount := decimal.RequireFromString("1000.00")
	rate := decimal.RequireFromString("0.05")

	installment, err := Installment(amount, rate, 12, decimal.Zero)
	require.NoError(t, err)

	return models.Loan{
		LoanNumber:  "000-0000-0000-0001",
		Amount:      amount,
		Term:        12,
		Rate:        rate,
		Installment: installment,
		DateInitial: time.Date(2019, 3, 24, 11, 30, 0, 0, time.UTC),
	}
}

func payment(status models.PaymentStatus, amount string, date time.Time) models.Payment {
	return models.Payment{
		Status: status,
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func TestBalanceAgainstLedger(t *testing.T) {
	loan := referenceLoan(t)
	paymentDate := time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC)

	ledger := []models.Payment{
		payment(models.PaymentMade, "200", paymentDate),
		payment(models.PaymentMade, "200", paymentDate),
		payment(models.PaymentMissed, "200", paymentDate),
	}

	// 85.60 * 12 - 400, the missed payment does not count
	balance := Balance(loan, ledger, time.Date(2019, 4, 25, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "627.2", balance.String())
}

func TestBalanceBeforeAnyPaymentIsFullyOutstanding(t *testing.T) {
	loan := referenceLoan(t)
	ledger := []models.Payment{
		payment(models.PaymentMade, "200", time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC)),
	}

	balance := Balance(loan, ledger, time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, TotalPayable(loan).String(), balance.String())
	assert.Equal(t, "1027.2", balance.String())
}

func TestBalanceEmptyLedger(t *testing.T) {
	loan := referenceLoan(t)
	balance := Balance(loan, nil, time.Now())
	assert.Equal(t, "1027.2", balance.String())
}

func TestBalanceMonotonicInMadePayments(t *testing.T) {
	loan := referenceLoan(t)
	now := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	when := time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC)

	var ledger []models.Payment
	previous := Balance(loan, ledger, now)

	for i := 0; i < 5; i++ {
		ledger = append(ledger, payment(models.PaymentMade, "85.60", when))
		current := Balance(loan, ledger, now)
		assert.True(t, current.LessThan(previous), "made payment must reduce balance")
		previous = current
	}

	ledger = append(ledger, payment(models.PaymentMissed, "85.60", when))
	assert.True(t, Balance(loan, ledger, now).Equal(previous), "missed payment must not reduce balance")
}

func TestNextExpectedInstallmentReamortizes(t *testing.T) {
	loan := referenceLoan(t)
	when := time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC)
	now := time.Date(2019, 4, 25, 0, 0, 0, 0, time.UTC)

	ledger := []models.Payment{
		payment(models.PaymentMade, "200", when),
		payment(models.PaymentMade, "200", when),
		payment(models.PaymentMissed, "200", when),
	}

	// balance 627.20 spread over the 9 periods left
	expected := NextExpectedInstallment(loan, ledger, now)
	assert.Equal(t, "69.68", expected.String())
}

func TestNextExpectedInstallmentNoPeriodsLeft(t *testing.T) {
	loan := referenceLoan(t)
	when := time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC)

	var ledger []models.Payment
	for i := 0; i < loan.Term; i++ {
		ledger = append(ledger, payment(models.PaymentMissed, "85.60", when))
	}

	now := time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC)
	expected := NextExpectedInstallment(loan, ledger, now)
	assert.True(t, expected.Equal(Balance(loan, ledger, now)))
}

func TestMissedCount(t *testing.T) {
	when := time.Now()
	ledger := []models.Payment{
		payment(models.PaymentMade, "10", when),
		payment(models.PaymentMissed, "10", when),
		payment(models.PaymentMissed, "10", when),
	}
	assert.Equal(t, 2, MissedCount(ledger))
}
