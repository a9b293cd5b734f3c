package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests moving an order along one edge of the
// status state machine, optionally arming the next scheduler deadline.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	target       order.Status
	actor        string
	nextStatusAt *time.Time

	guard kernel.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request. nextStatusAt may be
// nil when the following stage is advanced manually rather than by the
// scheduler.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor string,
	nextStatusAt *time.Time,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		nextStatusAt: nextStatusAt,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns who triggered the transition, recorded in the audit trail.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// NextStatusAt returns the scheduler deadline to arm after the transition, or nil.
func (c TransitionOrderCommand) NextStatusAt() *time.Time {
	return c.nextStatusAt
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
