package engine

import (
	"math"
	"testing"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallment(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		rate       string
		term       int
		adjustment string
		expected   string
	}{
		{"reference loan", "1000.00", "0.05", 12, "0", "85.6"},
		{"one currency unit more", "1001.00", "0.05", 12, "0", "85.69"},
		{"single period", "1000.00", "0.05", 1, "0", "1050"},
		{"adjustment cancels rate, even split", "1200.00", "0.002", 12, "-0.002", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Installment(
				decimal.RequireFromString(tt.amount),
				decimal.RequireFromString(tt.rate),
				tt.term,
				decimal.RequireFromString(tt.adjustment),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestInstallmentAdjustmentMovesPrice(t *testing.T) {
	amount := decimal.RequireFromString("1000.00")
	rate := decimal.RequireFromString("0.05")

	base, err := Installment(amount, rate, 12, decimal.Zero)
	require.NoError(t, err)

	discounted, err := Installment(amount, rate, 12, decimal.RequireFromString("-0.002"))
	require.NoError(t, err)

	premium, err := Installment(amount, rate, 12, decimal.RequireFromString("0.004"))
	require.NoError(t, err)

	assert.True(t, discounted.LessThan(base))
	assert.True(t, premium.GreaterThan(base))
}

func TestInstallmentInvalidInputs(t *testing.T) {
	amount := decimal.RequireFromString("1000.00")
	rate := decimal.RequireFromString("0.05")

	_, err := Installment(amount, rate, 0, decimal.Zero)
	assert.ErrorIs(t, err, consts.ErrorInvalidTerm)

	_, err = Installment(amount, rate, -3, decimal.Zero)
	assert.ErrorIs(t, err, consts.ErrorInvalidTerm)

	// Periodic rate pushed to -1 or below
	_, err = Installment(amount, rate, 12, decimal.RequireFromString("-13"))
	assert.ErrorIs(t, err, consts.ErrorInvalidPeriodicRate)
}

// The decimal computation should track the closed-form float formula
// across orders of magnitude, within rounding tolerance.
func TestInstallmentTracksAnnuityFormula(t *testing.T) {
	rate := 0.05
	term := 12

	for _, amount := range []float64{100, 1000, 10000, 100000, 1000000, 10000000} {
		got, err := Installment(
			decimal.NewFromFloat(amount),
			decimal.NewFromFloat(rate),
			term,
			decimal.Zero,
		)
		require.NoError(t, err)

		r := rate / float64(term)
		want := (r + r/(math.Pow(1+r, float64(term))-1)) * amount

		diff := math.Abs(got.InexactFloat64() - want)
		assert.LessOrEqual(t, diff, 0.08, "amount %.0f: got %s want %.4f", amount, got, want)
	}
}
