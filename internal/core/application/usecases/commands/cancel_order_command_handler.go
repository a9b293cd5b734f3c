package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order from any non-terminal state.
//
// Cancellation always enqueues a cancelled-notification outbox entry in the
// same transaction as the status change; the dispatch attempt follows the
// commit. Cancelling a delivered order fails with errs.ErrInvalidTransition.
// Refund processing is an external collaborator, not performed here.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	resolver   entryResolver
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
	dispatchTimeout time.Duration,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   newEntryResolver(uowFactory, dispatcher, dispatchTimeout),
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	from := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate, from); err != nil {
		return err
	}

	now := time.Now()
	event := order.NewOrderCancelledEvent(aggregate.ID(), from, cmd.Reason(), cmd.Actor(), now)
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	snapshot := outbox.SnapshotFromOrder(aggregate)
	snapshot.Reason = cmd.Reason()
	entry, err := outbox.NewEntry(kernel.NewUUID(), aggregate.ID(), order.NotificationCancelled, snapshot, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Outcome of the dispatch lands on the outbox entry; a failed send does
	// not fail the cancellation.
	_, err = h.resolver.dispatchAndResolve(ctx, aggregate, entry, snapshot, cmd.Actor(), time.Now())
	return err
}
