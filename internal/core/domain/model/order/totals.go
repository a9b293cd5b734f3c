package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// reverseChargeLabel replaces the country VAT label on B2B invoices where the
// EU reverse-charge mechanism shifts VAT liability to the buyer.
const reverseChargeLabel = "Reverse Charge"

// ErrTotalsAreNotConstructed is returned when a TotalsSnapshot was not created
// through CalculateTotals or RestoreTotals.
var ErrTotalsAreNotConstructed = errors.New(
	"TotalsSnapshot must be created via CalculateTotals or RestoreTotals")

// TotalsSnapshot is the immutable VAT/gross breakdown of an order, computed
// exactly once at creation. All amounts are integer cents.
//
// Invariants:
//   - totalGross == subtotalNet + shippingNet + surchargesNet + vatAmount,
//     exactly, for every input: the gross is always obtained by summation and
//     never rounded independently.
//   - vatAmount == 0 whenever isReverseCharge is true, regardless of the rate.
type TotalsSnapshot struct {
	subtotalNet     int64
	shippingNet     int64
	surchargesNet   int64
	vatRateBps      int64
	vatLabel        string
	vatAmount       int64
	totalGross      int64
	isReverseCharge bool

	guard kernel.ConstructorGuard
}

// CalculateTotals computes the totals snapshot for a set of order lines in the
// given VAT jurisdiction.
//
// The VAT amount is rounded half-up on the summed net total:
// vatAmount = (totalNet*rateBps + 5000) / 10000 in integer arithmetic.
// Rounding once on the total, rather than per line, keeps the §3 invariant
// exact for every input.
//
// If isReverseCharge is set, the VAT amount is forced to 0 and the label
// becomes "Reverse Charge" irrespective of the looked-up rate.
//
// Fails with a validation error on an empty item list or an unsupported
// country.
func CalculateTotals(
	items []Item,
	country kernel.Country,
	shippingNet int64,
	surchargesNet int64,
	isReverseCharge bool,
) (TotalsSnapshot, error) {
	if len(items) == 0 {
		return TotalsSnapshot{}, errs.NewValueIsRequiredError("items")
	}
	if err := country.Validate(); err != nil {
		return TotalsSnapshot{}, err
	}
	if shippingNet < 0 {
		return TotalsSnapshot{}, errs.NewValueIsInvalidError("shipping net")
	}
	if surchargesNet < 0 {
		return TotalsSnapshot{}, errs.NewValueIsInvalidError("surcharges net")
	}

	var subtotalNet int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return TotalsSnapshot{}, err
		}
		subtotalNet += item.LineTotalNet()
	}

	rateBps := country.VATRateBps()
	label := country.VATLabel()
	totalNet := subtotalNet + shippingNet + surchargesNet

	var vatAmount int64
	if isReverseCharge {
		label = reverseChargeLabel
	} else {
		vatAmount = roundHalfUpBps(totalNet, rateBps)
	}

	return TotalsSnapshot{
		subtotalNet:     subtotalNet,
		shippingNet:     shippingNet,
		surchargesNet:   surchargesNet,
		vatRateBps:      rateBps,
		vatLabel:        label,
		vatAmount:       vatAmount,
		totalGross:      totalNet + vatAmount,
		isReverseCharge: isReverseCharge,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// roundHalfUpBps applies a basis-point rate to a non-negative cent amount,
// rounding half-up. 50.5 cents of computed VAT become 51.
func roundHalfUpBps(amount, rateBps int64) int64 {
	return (amount*rateBps + 5000) / 10000
}

// RestoreTotals reconstructs a snapshot from persistence as it was recorded,
// without recomputing. The stored breakdown is authoritative history.
func RestoreTotals(
	subtotalNet, shippingNet, surchargesNet, vatRateBps int64,
	vatLabel string,
	vatAmount, totalGross int64,
	isReverseCharge bool,
) TotalsSnapshot {
	return TotalsSnapshot{
		subtotalNet:     subtotalNet,
		shippingNet:     shippingNet,
		surchargesNet:   surchargesNet,
		vatRateBps:      vatRateBps,
		vatLabel:        vatLabel,
		vatAmount:       vatAmount,
		totalGross:      totalGross,
		isReverseCharge: isReverseCharge,
		guard:           kernel.NewConstructorGuard(),
	}
}

// Validate ensures the snapshot was created via one of its factories.
func (t TotalsSnapshot) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// SubtotalNet returns the summed net line totals in cents.
func (t TotalsSnapshot) SubtotalNet() int64 {
	return t.subtotalNet
}

// ShippingNet returns the net shipping cost in cents.
func (t TotalsSnapshot) ShippingNet() int64 {
	return t.shippingNet
}

// SurchargesNet returns the summed net surcharges in cents.
func (t TotalsSnapshot) SurchargesNet() int64 {
	return t.surchargesNet
}

// VATRateBps returns the applied VAT rate in basis points.
func (t TotalsSnapshot) VATRateBps() int64 {
	return t.vatRateBps
}

// VATLabel returns the invoice label of the VAT line, or "Reverse Charge".
func (t TotalsSnapshot) VATLabel() string {
	return t.vatLabel
}

// VATAmount returns the VAT in cents. Zero under reverse charge.
func (t TotalsSnapshot) VATAmount() int64 {
	return t.vatAmount
}

// TotalGross returns the gross total in cents, always the exact sum of the
// net components and the VAT amount.
func (t TotalsSnapshot) TotalGross() int64 {
	return t.totalGross
}

// IsReverseCharge reports whether the EU reverse-charge mechanism applies.
func (t TotalsSnapshot) IsReverseCharge() bool {
	return t.isReverseCharge
}
