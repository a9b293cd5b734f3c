package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var ErrMarkEmailSentCommandIsNotConstructed = errors.New(
	"MarkEmailSentCommand must be created via NewMarkEmailSentCommand constructor",
)

// MarkEmailSentCommand acknowledges that a notification for an order was
// delivered, carrying the provider's message id from the resolved outbox entry.
type MarkEmailSentCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	notification      order.NotificationType
	providerMessageID string
	actor             string

	guard kernel.ConstructorGuard
}

// NewMarkEmailSentCommand creates an acknowledgement for the given
// notification type.
func NewMarkEmailSentCommand(
	orderID kernel.UUID,
	notification order.NotificationType,
	providerMessageID string,
	actor string,
) (MarkEmailSentCommand, error) {
	cmd := MarkEmailSentCommand{
		providerMessageID: providerMessageID,
		guard:             kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNotification(notification),
		cmd.setActor(actor),
	); err != nil {
		return MarkEmailSentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkEmailSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkEmailSentCommandIsNotConstructed)
}

// OrderID returns the order the acknowledgement belongs to.
func (c MarkEmailSentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notification returns the acknowledged notification type.
func (c MarkEmailSentCommand) Notification() order.NotificationType {
	return c.notification
}

// ProviderMessageID returns the dispatcher's message id, if known.
func (c MarkEmailSentCommand) ProviderMessageID() string {
	return c.providerMessageID
}

// Actor returns who recorded the acknowledgement.
func (c MarkEmailSentCommand) Actor() string {
	return c.actor
}

func (c *MarkEmailSentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkEmailSentCommand) setNotification(notification order.NotificationType) error {
	if err := notification.Validate(); err != nil {
		return err
	}
	c.notification = notification
	return nil
}

func (c *MarkEmailSentCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
