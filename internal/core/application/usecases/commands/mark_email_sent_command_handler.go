package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// MarkEmailSentCommandHandler sets the typed email flag for a notification.
//
// The operation is idempotent: re-acknowledging an already-sent type is a
// no-op on the flag and never raises, but an email_sent event is appended
// either way so duplicate provider callbacks remain traceable.
type MarkEmailSentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkEmailSentCommandHandler creates a handler for send acknowledgements.
func NewMarkEmailSentCommandHandler(uowFactory OrderUoWFactory) MarkEmailSentCommandHandler {
	return MarkEmailSentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
func (h MarkEmailSentCommandHandler) Handle(ctx context.Context, cmd MarkEmailSentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	changed, err := aggregate.MarkEmailSent(cmd.Notification(), now)
	if err != nil {
		return err
	}

	if changed {
		if err = uow.OrderRepository().Update(ctx, aggregate, aggregate.Status()); err != nil {
			return err
		}
	}

	event := order.NewEmailSentEvent(aggregate.ID(), cmd.Notification(), cmd.ProviderMessageID(), cmd.Actor(), now)
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
