package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryFromString(t *testing.T) {
	tests := []struct {
		code    string
		rateBps int64
		label   string
	}{
		{"DE", 700, "MwSt."},
		{"AT", 2000, "USt."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := kernel.CountryFromString(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.code, c.String())
			assert.Equal(t, tt.rateBps, c.VATRateBps())
			assert.Equal(t, tt.label, c.VATLabel())
		})
	}
}

func TestCountryFromString_Unsupported(t *testing.T) {
	for _, code := range []string{"", "CH", "de", "DEU"} {
		_, err := kernel.CountryFromString(code)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, "code %q", code)
	}
}
