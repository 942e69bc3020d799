package engine

import "fmt"

// FormatLoanNumber renders an atomically reserved sequence value as the
// grouped display identifier clients see, e.g. sequence 1 becomes
// "000-0000-0000-0001". The sequence itself is reserved by the store;
// formatting stays pure so concurrent originations can never collide
// here.
func FormatLoanNumber(sequence int64) string {
	padded := fmt.Sprintf("%015d", sequence)
	return fmt.Sprintf("%s-%s-%s-%s", padded[0:3], padded[3:7], padded[7:11], padded[11:15])
}
