package order

import "fulfillment/internal/pkg/errs"

// PaymentStatus tracks the payment side of an order independently of the
// fulfillment status. Settlement itself happens in an external system; the
// core only records the observed state.
type PaymentStatus int

const (
	// PaymentUnknown catches uninitialized values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status at order creation.
	PaymentPending

	// PaymentPaid indicates the payment was confirmed by the external system.
	PaymentPaid

	// PaymentRefundPending indicates a cancellation triggered a refund that the
	// external system has not yet settled.
	PaymentRefundPending
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:       "unknown",
		PaymentPending:       "pending",
		PaymentPaid:          "paid",
		PaymentRefundPending: "refund_pending",
	}
}

// PaymentStatusFromString parses a persisted payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusStrings() {
		if name == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidError("payment status " + s)
}

// String returns the lowercase name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the payment status is one of the defined states.
func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[p]; !ok || p == PaymentUnknown {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}
