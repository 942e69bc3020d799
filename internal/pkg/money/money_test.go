package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantizeTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"already two places", "85.60", "85.6"},
		{"truncates, never rounds up", "85.6074", "85.6"},
		{"high fraction still truncates", "85.6999", "85.69"},
		{"integer untouched", "1000", "1000"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.expected, Quantize(in).String())
		})
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.RequireFromString("0.01")))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.RequireFromString("-1")))
}
