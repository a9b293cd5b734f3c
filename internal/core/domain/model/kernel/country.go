package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Country represents a VAT jurisdiction the shop sells into. Each country
// carries its VAT rate and the label printed on invoices.
//
// Rates are held in basis points so all VAT arithmetic stays in integers:
// DE 7% (reduced rate for the goods sold) and AT 20%.
type Country string

const (
	// Germany applies the reduced 7% rate, labelled "MwSt." on invoices.
	Germany Country = "DE"

	// Austria applies the standard 20% rate, labelled "USt." on invoices.
	Austria Country = "AT"
)

// vatTable maps each supported country to its rate in basis points and label.
func vatTable() map[Country]struct {
	rateBps int64
	label   string
} {
	return map[Country]struct {
		rateBps int64
		label   string
	}{
		Germany: {rateBps: 700, label: "MwSt."},
		Austria: {rateBps: 2000, label: "USt."},
	}
}

// CountryFromString parses a two-letter country code into a Country.
// Returns a validation error for unsupported jurisdictions.
func CountryFromString(s string) (Country, error) {
	c := Country(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks the country is a supported VAT jurisdiction.
func (c Country) Validate() error {
	if _, ok := vatTable()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("country",
			fmt.Errorf("%q is not a supported jurisdiction", string(c)))
	}
	return nil
}

// String returns the two-letter country code.
func (c Country) String() string {
	return string(c)
}

// VATRateBps returns the country's VAT rate in basis points (700 = 7%).
func (c Country) VATRateBps() int64 {
	return vatTable()[c].rateBps
}

// VATLabel returns the label used for the VAT line on invoices and
// notifications, e.g. "MwSt." for Germany.
func (c Country) VATLabel() string {
	return vatTable()[c].label
}
