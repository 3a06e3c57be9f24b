package common

import (
	"fmt"
	"strings"

	"github.com/stellar/go/amount"
)

// AmountToStroops converts a decimal amount string to stroops.
// Negative amounts and more than 7 fractional digits are rejected, since the ledger would reject them.
func AmountToStroops(s string) (int64, error) {
	v, err := amount.ParseInt64(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid amount %q: negative", s)
	}
	return v, nil
}

// CompareAmounts compares two decimal amount strings without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string) (int, error) {
	aVal, err := AmountToStroops(a)
	if err != nil {
		return 0, err
	}
	bVal, err := AmountToStroops(b)
	if err != nil {
		return 0, err
	}

	switch {
	case aVal < bVal:
		return -1, nil
	case aVal > bVal:
		return 1, nil
	}
	return 0, nil
}
