package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/ports"
)

// entryResolver runs the second half of the outbox protocol for a committed
// pending entry: attempt delivery with a bounded timeout, then persist the
// outcome in a fresh transaction. The order's status transition (or creation)
// has already committed by the time this runs, so a dispatch failure can
// never roll it back.
type entryResolver struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
	timeout    time.Duration
}

func newEntryResolver(uowFactory UoWFactory, dispatcher ports.NotificationDispatcher, timeout time.Duration) entryResolver {
	return entryResolver{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		timeout:    timeout,
	}
}

// dispatchAndResolve sends the entry's notification and records the outcome.
//
// On success the entry is marked sent, the order's email flag is set (guarded
// by the order's current status, which the send does not change) and an
// email_sent event is appended. On failure the entry is marked failed and the
// order is left untouched, eligible for a retry entry later.
//
// The returned bool reports whether the notification was delivered. The
// returned error covers persistence of the outcome only, never the dispatch
// itself.
func (r entryResolver) dispatchAndResolve(
	ctx context.Context,
	aggregate *order.Order,
	entry *outbox.Entry,
	snapshot outbox.Snapshot,
	actor string,
	now time.Time,
) (bool, error) {
	sendCtx, cancel := context.WithTimeout(ctx, r.timeout)
	providerMessageID, sendErr := r.dispatcher.Send(sendCtx, entry.TemplateID(), snapshot)
	cancel()

	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if sendErr != nil {
		if err := entry.MarkFailed(sendErr.Error(), now); err != nil {
			return false, err
		}
		if err := uow.OutboxRepository().Update(ctx, entry); err != nil {
			return false, err
		}
		return false, uow.Commit(ctx)
	}

	if err := entry.MarkSent(providerMessageID, now); err != nil {
		return false, err
	}
	if err := uow.OutboxRepository().Update(ctx, entry); err != nil {
		return false, err
	}

	changed, err := aggregate.MarkEmailSent(entry.Notification(), now)
	if err != nil {
		return false, err
	}
	if changed {
		if err = uow.OrderRepository().Update(ctx, aggregate, aggregate.Status()); err != nil {
			return false, err
		}
	}

	event := order.NewEmailSentEvent(aggregate.ID(), entry.Notification(), providerMessageID, actor, now)
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
