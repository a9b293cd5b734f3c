package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is one order line as submitted at intake. Validation happens in
// the domain when the line is turned into an order.Item.
type ItemInput struct {
	Name         string
	SKU          string
	Quantity     int
	UnitPriceNet int64
}

// CreateOrderCommand represents a request to register a new order.
// It carries the intake data: customer, jurisdiction, lines and the net
// shipping/surcharge amounts in cents.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	country         kernel.Country
	orderType       order.Type
	customerName    string
	customerEmail   string
	items           []ItemInput
	shippingNet     int64
	surchargesNet   int64
	isReverseCharge bool
	actor           string

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identity, jurisdiction, contact data and that at least one item
// is present; per-line validation is left to the domain.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	country kernel.Country,
	orderType order.Type,
	customerName string,
	customerEmail string,
	items []ItemInput,
	shippingNet int64,
	surchargesNet int64,
	isReverseCharge bool,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderType:       orderType,
		items:           append([]ItemInput(nil), items...),
		shippingNet:     shippingNet,
		surchargesNet:   surchargesNet,
		isReverseCharge: isReverseCharge,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCountry(country),
		orderType.Validate(),
		cmd.setCustomer(customerName, customerEmail),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Country returns the VAT jurisdiction of the order.
func (c CreateOrderCommand) Country() kernel.Country {
	return c.country
}

// OrderType returns the order type.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the notification recipient address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Items returns the submitted order lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

// ShippingNet returns the net shipping cost in cents.
func (c CreateOrderCommand) ShippingNet() int64 {
	return c.shippingNet
}

// SurchargesNet returns the summed net surcharges in cents.
func (c CreateOrderCommand) SurchargesNet() int64 {
	return c.surchargesNet
}

// IsReverseCharge reports whether the EU reverse-charge mechanism applies.
func (c CreateOrderCommand) IsReverseCharge() bool {
	return c.isReverseCharge
}

// Actor returns who triggered the creation, recorded in the audit trail.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCountry(country kernel.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	c.country = country
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	c.customerName = name
	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
