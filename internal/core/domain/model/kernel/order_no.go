package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// The human-readable order number is a pure function of the order sequence:
// the last three digits are split off with a dash, so sequence 300001 becomes
// "300-001". Parsing the formatted number recovers the sequence exactly.

// FormatOrderNo renders an order sequence as its human-readable order number.
func FormatOrderNo(seq int64) string {
	return fmt.Sprintf("%d-%03d", seq/1000, seq%1000)
}

// ParseOrderNo recovers the order sequence from a formatted order number.
// Returns a validation error if the input does not match the "NNN-NNN" shape
// produced by FormatOrderNo.
func ParseOrderNo(orderNo string) (int64, error) {
	head, tail, ok := strings.Cut(orderNo, "-")
	if !ok || len(tail) != 3 {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderNo",
			fmt.Errorf("%q does not match the order number format", orderNo))
	}

	high, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderNo", err)
	}

	low, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderNo", err)
	}

	return high*1000 + low, nil
}
