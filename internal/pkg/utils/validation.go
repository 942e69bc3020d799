package utils

import (
	"regexp"
	"strconv"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/consts"
)

var nonDigits = regexp.MustCompile(`\D`)

// ParseRequestDate parses a request datetime against the accepted
// layouts and normalizes it to UTC.
func ParseRequestDate(value string) (time.Time, error) {
	for _, layout := range consts.RequestDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, consts.ErrorInvalidDateFormat.WithField("date", value)
}

// CleanCPF strips any punctuation from a CPF, leaving digits only.
func CleanCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// IsValidCPF checks the cleaned CPF length and its two verifier digits.
func IsValidCPF(cleanedCPF string) bool {
	if len(cleanedCPF) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(cleanedCPF); i++ {
		if cleanedCPF[i] != cleanedCPF[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digits := make([]int, 11)
	for i, r := range cleanedCPF {
		d, err := strconv.Atoi(string(r))
		if err != nil {
			return false
		}
		digits[i] = d
	}

	return verifierDigit(digits, 9) == digits[9] && verifierDigit(digits, 10) == digits[10]
}

func verifierDigit(digits []int, position int) int {
	sum := 0
	for i := 0; i < position; i++ {
		sum += digits[i] * (position + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		return 0
	}
	return remainder
}

// MissingFields returns the names of required fields whose value is empty.
func MissingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
