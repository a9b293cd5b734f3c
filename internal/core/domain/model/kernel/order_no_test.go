package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderNo(t *testing.T) {
	assert.Equal(t, "300-001", kernel.FormatOrderNo(300001))
	assert.Equal(t, "300-000", kernel.FormatOrderNo(300000))
	assert.Equal(t, "301-999", kernel.FormatOrderNo(301999))
}

func TestParseOrderNo_RoundTrip(t *testing.T) {
	for _, seq := range []int64{300000, 300001, 305042, 999999, 1234567} {
		got, err := kernel.ParseOrderNo(kernel.FormatOrderNo(seq))
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}

func TestParseOrderNo_Invalid(t *testing.T) {
	for _, orderNo := range []string{"", "300001", "300-1", "300-abcd", "abc-001", "300-0012"} {
		_, err := kernel.ParseOrderNo(orderNo)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, "orderNo %q", orderNo)
	}
}
