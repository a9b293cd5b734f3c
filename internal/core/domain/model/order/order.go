package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the fulfillment core. It owns the status
// state machine, the immutable totals snapshot, the typed email flags and the
// scheduling fields consumed by the status scheduler.
//
// Invariants:
//   - seq is assigned once at creation and never reused; the human-readable
//     order number is a pure function of it
//   - the totals snapshot is computed once at creation and never recomputed
//   - items are immutable once created
//   - status transitions follow the defined state machine; delivered and
//     cancelled are terminal
//   - an email flag may only be true once the matching notification was
//     acknowledged as sent
//   - internal notes are append-only
//
// Order state is mutated exclusively through these methods, and the aggregate
// is mutated exclusively by the command handlers.
type Order struct {
	id                kernel.UUID
	seq               int64
	country           kernel.Country
	orderType         Type
	customerName      string
	customerEmail     string
	items             []Item
	totals            TotalsSnapshot
	status            Status
	paymentStatus     PaymentStatus
	emailFlags        EmailFlags
	needsWeekendHello bool
	nextStatusAt      *time.Time
	notes             []Note
	createdAt         time.Time

	isConstructed bool
}

// NewOrder creates a new order in received status with pending payment.
//
// The totals snapshot is computed here, once, from the items and the VAT
// jurisdiction. The weekend-hello flag is derived from createdAt evaluated in
// the fixed reference timezone, so the result does not depend on where the
// process runs.
//
// Fails with a validation error on an empty item list, an unsupported
// country, or missing customer contact data.
func NewOrder(
	id kernel.UUID,
	seq int64,
	country kernel.Country,
	orderType Type,
	customerName string,
	customerEmail string,
	items []Item,
	shippingNet int64,
	surchargesNet int64,
	isReverseCharge bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusReceived,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSeq(seq),
		o.setCountry(country),
		o.setOrderType(orderType),
		o.setCustomer(customerName, customerEmail),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	totals, err := CalculateTotals(items, country, shippingNet, surchargesNet, isReverseCharge)
	if err != nil {
		return nil, err
	}

	o.items = append([]Item(nil), items...)
	o.totals = totals
	o.needsWeekendHello = isWeekend(createdAt)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored status,
// flags and totals are taken as recorded; only structural validity is checked.
func RestoreOrder(
	id kernel.UUID,
	seq int64,
	country kernel.Country,
	orderType Type,
	customerName string,
	customerEmail string,
	items []Item,
	totals TotalsSnapshot,
	status Status,
	paymentStatus PaymentStatus,
	emailFlags EmailFlags,
	needsWeekendHello bool,
	nextStatusAt *time.Time,
	notes []Note,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSeq(seq),
		o.setCountry(country),
		o.setOrderType(orderType),
		o.setCustomer(customerName, customerEmail),
		o.setCreatedAt(createdAt),
		totals.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.items = append([]Item(nil), items...)
	o.totals = totals
	o.status = status
	o.paymentStatus = paymentStatus
	o.emailFlags = emailFlags
	o.needsWeekendHello = needsWeekendHello
	o.nextStatusAt = nextStatusAt
	o.notes = append([]Note(nil), notes...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Seq returns the monotonic order sequence assigned at creation.
func (o *Order) Seq() int64 {
	return o.seq
}

// OrderNo returns the human-readable order number derived from the sequence.
func (o *Order) OrderNo() string {
	return kernel.FormatOrderNo(o.seq)
}

// Country returns the VAT jurisdiction of the order.
func (o *Order) Country() kernel.Country {
	return o.country
}

// OrderType returns whether this is a normal order or a preorder.
func (o *Order) OrderType() Type {
	return o.orderType
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the notification recipient address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Totals returns the immutable totals snapshot.
func (o *Order) Totals() TotalsSnapshot {
	return o.totals
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// EmailFlags returns the per-notification send flags.
func (o *Order) EmailFlags() EmailFlags {
	return o.emailFlags
}

// NeedsWeekendHello reports whether the weekend acknowledgement is still owed.
func (o *Order) NeedsWeekendHello() bool {
	return o.needsWeekendHello
}

// NextStatusAt returns when the scheduler should advance the order, or nil.
func (o *Order) NextStatusAt() *time.Time {
	return o.nextStatusAt
}

// Notes returns a copy of the append-only internal notes.
func (o *Order) Notes() []Note {
	return append([]Note(nil), o.notes...)
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order along a validated edge of the state machine.
// The pending schedule is cleared: each new state must be re-armed explicitly.
// Returns an InvalidTransitionError for any edge outside the table.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.nextStatusAt = nil
	return nil
}

// Cancel moves the order to cancelled from any non-terminal state.
// Cancelling a delivered (or already cancelled) order fails with an
// InvalidTransitionError. A paid order flips to refund_pending; the refund
// itself is processed by an external collaborator.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return errs.NewInvalidTransitionError(o.status.String(), StatusCancelled.String())
	}

	o.status = StatusCancelled
	o.nextStatusAt = nil
	if o.paymentStatus == PaymentPaid {
		o.paymentStatus = PaymentRefundPending
	}
	return nil
}

// MarkEmailSent sets the flag for the given notification type.
// Idempotent: re-marking an already-sent type is a no-op and reports false,
// never an error. The caller appends the traceability event either way.
func (o *Order) MarkEmailSent(t NotificationType, at time.Time) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	return o.emailFlags.markSent(t, at), nil
}

// ClearWeekendHello marks the weekend acknowledgement as handled.
func (o *Order) ClearWeekendHello() {
	o.needsWeekendHello = false
}

// ScheduleNextStatus arms the scheduler to advance the order at the given time.
// Fails with an InvalidStateError on terminal orders, which have no successor.
func (o *Order) ScheduleNextStatus(at time.Time) error {
	if _, ok := o.status.Next(); !ok {
		return errs.NewInvalidStateError("order "+o.OrderNo(),
			fmt.Sprintf("in status %s has no scheduled successor", o.status))
	}

	o.nextStatusAt = &at
	return nil
}

// AppendNote adds an internal note. Notes are append-only.
func (o *Order) AppendNote(author, text string, at time.Time) error {
	if text == "" {
		return errs.NewValueIsRequiredError("note text")
	}

	o.notes = append(o.notes, Note{At: at, Author: author, Text: text})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSeq(seq int64) error {
	if seq <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order seq",
			fmt.Errorf("%d is not greater than 0", seq))
	}
	o.seq = seq
	return nil
}

func (o *Order) setCountry(country kernel.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	o.country = country
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomer(name, email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	o.customerName = name
	o.customerEmail = email
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
