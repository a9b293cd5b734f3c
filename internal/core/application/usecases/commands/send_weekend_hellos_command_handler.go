package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SendWeekendHellosCommandHandler is the second scheduler phase: it sends the
// weekend acknowledgement to orders created outside business days.
//
// Per order it persists a pending outbox entry first, attempts dispatch, and
// only on success sets the weekend_hello email flag and clears the
// needs-weekend-hello marker. On failure both flags stay untouched, so the
// next run retries: duplicate sends are acceptable, missed sends are not.
type SendWeekendHellosCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
	timeout    time.Duration
	logger     *slog.Logger
}

// NewSendWeekendHellosCommandHandler creates the weekend-hello phase handler.
func NewSendWeekendHellosCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
	dispatchTimeout time.Duration,
	logger *slog.Logger,
) SendWeekendHellosCommandHandler {
	return SendWeekendHellosCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		timeout:    dispatchTimeout,
		logger:     logger.With("component", "weekend_hellos"),
	}
}

// Handle runs one pass and returns the aggregated outcome.
func (h SendWeekendHellosCommandHandler) Handle(
	ctx context.Context,
	cmd SendWeekendHellosCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	pending, err := h.uowFactory.Create().OrderRepository().GetAllNeedingWeekendHello(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, aggregate := range pending {
		if err := h.sendOne(ctx, aggregate, cmd.Now()); err != nil {
			result.Errors++
			h.logger.ErrorContext(ctx, "Weekend hello failed, will retry next run",
				"order_no", aggregate.OrderNo(), "error", err)
			continue
		}
		result.Processed++
	}

	return result, nil
}

func (h SendWeekendHellosCommandHandler) sendOne(
	ctx context.Context,
	aggregate *order.Order,
	now time.Time,
) error {
	snapshot := outbox.SnapshotFromOrder(aggregate)
	entry, err := outbox.NewEntry(kernel.NewUUID(), aggregate.ID(), order.NotificationWeekendHello, snapshot, now)
	if err != nil {
		return err
	}

	// Persist the intent before any delivery attempt.
	if err = h.persistEntry(ctx, entry); err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, h.timeout)
	providerMessageID, sendErr := h.dispatcher.Send(sendCtx, entry.TemplateID(), snapshot)
	cancel()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if sendErr != nil {
		// Record the failure; the order flags stay untouched so the next run
		// retries the acknowledgement.
		if err = entry.MarkFailed(sendErr.Error(), now); err != nil {
			return err
		}
		if err = uow.OutboxRepository().Update(ctx, entry); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return errs.NewDispatchError(entry.TemplateID(), sendErr)
	}

	if err = entry.MarkSent(providerMessageID, now); err != nil {
		return err
	}
	if err = uow.OutboxRepository().Update(ctx, entry); err != nil {
		return err
	}

	if _, err = aggregate.MarkEmailSent(order.NotificationWeekendHello, now); err != nil {
		return err
	}
	aggregate.ClearWeekendHello()

	if err = uow.OrderRepository().Update(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	event := order.NewEmailSentEvent(aggregate.ID(), order.NotificationWeekendHello, providerMessageID, "scheduler", now)
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SendWeekendHellosCommandHandler) persistEntry(ctx context.Context, entry *outbox.Entry) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OutboxRepository().Add(ctx, entry); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
