package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// BatchResult aggregates the per-order outcomes of one scheduler phase.
type BatchResult struct {
	Processed int
	Errors    int
}

// ProcessDueTransitionsCommandHandler is the first scheduler phase: it is the
// only code path that advances orders purely because time elapsed.
//
// Per due order it computes the successor state from the fixed transition
// table, applies the transition guarded by the status it read, appends the
// status_changed event, and — when the new state has an associated
// notification — persists a pending outbox entry and attempts dispatch. A
// dispatch failure marks the entry failed but never rolls back the
// transition. One order's failure never aborts the rest of the batch: each
// outcome is captured independently in the BatchResult.
//
// Overlapping invocations are safe: the optimistic status guard makes the
// losing run skip the order silently, so each due order is transitioned
// exactly once with exactly one event.
type ProcessDueTransitionsCommandHandler struct {
	uowFactory UoWFactory
	resolver   entryResolver
	logger     *slog.Logger
}

// NewProcessDueTransitionsCommandHandler creates the transition phase handler.
func NewProcessDueTransitionsCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
	dispatchTimeout time.Duration,
	logger *slog.Logger,
) ProcessDueTransitionsCommandHandler {
	return ProcessDueTransitionsCommandHandler{
		uowFactory: uowFactory,
		resolver:   newEntryResolver(uowFactory, dispatcher, dispatchTimeout),
		logger:     logger.With("component", "due_transitions"),
	}
}

// Handle runs one pass and returns the aggregated outcome.
func (h ProcessDueTransitionsCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessDueTransitionsCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	due, err := h.uowFactory.Create().OrderRepository().GetAllDue(ctx, cmd.Now())
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, aggregate := range due {
		switch err := h.processOne(ctx, aggregate, cmd.Now()); {
		case err == nil:
			result.Processed++
		case errors.Is(err, errs.ErrConcurrentUpdate):
			// Another run already transitioned this order. Not an error.
			h.logger.DebugContext(ctx, "Order already processed by concurrent run",
				"order_no", aggregate.OrderNo())
		default:
			result.Errors++
			h.logger.ErrorContext(ctx, "Due transition failed",
				"order_no", aggregate.OrderNo(), "error", err)
		}
	}

	return result, nil
}

func (h ProcessDueTransitionsCommandHandler) processOne(
	ctx context.Context,
	aggregate *order.Order,
	now time.Time,
) error {
	from := aggregate.Status()
	next, ok := from.Next()
	if !ok {
		// GetAllDue excludes terminal states; an order landing here means the
		// read raced a concurrent terminal write.
		return errs.NewConcurrentUpdateError("order", aggregate.OrderNo())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.TransitionTo(next); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, aggregate, from); err != nil {
		return err
	}

	event := order.NewStatusChangedEvent(aggregate.ID(), from, next, "scheduler", now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	var (
		entry    *outbox.Entry
		snapshot outbox.Snapshot
	)
	if notification, hasNotification := order.NotificationForStatus(next); hasNotification {
		snapshot = outbox.SnapshotFromOrder(aggregate)

		var err error
		entry, err = outbox.NewEntry(kernel.NewUUID(), aggregate.ID(), notification, snapshot, now)
		if err != nil {
			return err
		}
		if err = uow.OutboxRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if entry == nil {
		return nil
	}

	// The transition is committed; from here on only the notification outcome
	// is at stake.
	sent, err := h.resolver.dispatchAndResolve(ctx, aggregate, entry, snapshot, "scheduler", now)
	if err != nil {
		return err
	}
	if !sent {
		h.logger.WarnContext(ctx, "Notification dispatch failed, recorded on outbox entry",
			"order_no", aggregate.OrderNo(), "template", entry.TemplateID())
	}

	return nil
}
