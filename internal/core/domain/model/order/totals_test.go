package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, unitPriceNet int64) order.Item {
	t.Helper()
	item, err := order.NewItem(name, "", quantity, unitPriceNet)
	require.NoError(t, err)
	return item
}

func TestCalculateTotals(t *testing.T) {
	t.Run("should compute German VAT on a 130000 cent net total", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Workbench", 1, 100000),
			mustItem(t, "Vise", 2, 10000),
		}

		totals, err := order.CalculateTotals(items, kernel.Germany, 8000, 2000, false)

		require.NoError(t, err)
		assert.Equal(t, int64(120000), totals.SubtotalNet())
		assert.Equal(t, int64(700), totals.VATRateBps())
		assert.Equal(t, "MwSt.", totals.VATLabel())
		assert.Equal(t, int64(9100), totals.VATAmount())
		assert.Equal(t, int64(139100), totals.TotalGross())
	})

	t.Run("should compute Austrian VAT at 20 percent", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Ladder", 1, 10000)}

		totals, err := order.CalculateTotals(items, kernel.Austria, 0, 0, false)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), totals.VATRateBps())
		assert.Equal(t, "USt.", totals.VATLabel())
		assert.Equal(t, int64(2000), totals.VATAmount())
		assert.Equal(t, int64(12000), totals.TotalGross())
	})

	t.Run("should force zero VAT under reverse charge", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Pallet", 1, 122000)}

		totals, err := order.CalculateTotals(items, kernel.Austria, 0, 0, true)

		require.NoError(t, err)
		assert.True(t, totals.IsReverseCharge())
		assert.Equal(t, int64(0), totals.VATAmount())
		assert.Equal(t, "Reverse Charge", totals.VATLabel())
		assert.Equal(t, int64(122000), totals.TotalGross())
		// The rate stays recorded for the invoice history.
		assert.Equal(t, int64(2000), totals.VATRateBps())
	})

	t.Run("should round VAT half-up", func(t *testing.T) {
		// 150 * 7% = 10.5 cents, rounds to 11.
		items := []order.Item{mustItem(t, "Washer", 1, 150)}

		totals, err := order.CalculateTotals(items, kernel.Germany, 0, 0, false)

		require.NoError(t, err)
		assert.Equal(t, int64(11), totals.VATAmount())
		assert.Equal(t, int64(161), totals.TotalGross())
	})

	t.Run("should keep gross equal to the exact component sum", func(t *testing.T) {
		cases := []struct {
			subtotal   int64
			shipping   int64
			surcharges int64
		}{
			{1, 0, 0},
			{99, 1, 3},
			{12345, 678, 9},
			{1000000, 4990, 250},
		}

		for _, tc := range cases {
			items := []order.Item{mustItem(t, "Part", 1, tc.subtotal)}

			totals, err := order.CalculateTotals(items, kernel.Germany, tc.shipping, tc.surcharges, false)

			require.NoError(t, err)
			sum := totals.SubtotalNet() + totals.ShippingNet() + totals.SurchargesNet() + totals.VATAmount()
			assert.Equal(t, sum, totals.TotalGross(), "subtotal %d", tc.subtotal)
		}
	})

	t.Run("should fail on empty item list", func(t *testing.T) {
		_, err := order.CalculateTotals(nil, kernel.Germany, 0, 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail on unsupported country", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Part", 1, 100)}

		_, err := order.CalculateTotals(items, kernel.Country("FR"), 0, 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on negative shipping", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Part", 1, 100)}

		_, err := order.CalculateTotals(items, kernel.Germany, -1, 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTotalsSnapshot_Validate(t *testing.T) {
	t.Run("should fail validation for zero value snapshot", func(t *testing.T) {
		var totals order.TotalsSnapshot

		err := totals.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrTotalsAreNotConstructed, err)
	})

	t.Run("should pass validation for restored snapshot", func(t *testing.T) {
		totals := order.RestoreTotals(100, 0, 0, 700, "MwSt.", 7, 107, false)

		require.NoError(t, totals.Validate())
	})
}
