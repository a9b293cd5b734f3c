package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/ports"
)

// CreateOrderResult reports the identity assigned to a newly created order
// and whether the confirmation notification went out on the first attempt.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Seq     int64
	OrderNo string

	// ConfirmationSent is false when the dispatch attempt failed; the failed
	// outbox entry holds the recorded error and a retry creates a new entry.
	ConfirmationSent bool
}

// CreateOrderCommandHandler handles order intake.
//
// It obtains the next order sequence, computes the totals snapshot, derives
// the weekend-hello flag, and persists the order, its items, the created
// event and the pending confirmation outbox entry as one atomic unit. Only
// after that commit does it attempt the confirmation dispatch and persist the
// outcome, so a crash mid-way leaves a recoverable pending intent rather than
// a dropped notification.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	sequences  ports.SequenceGenerator
	resolver   entryResolver
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// dispatchTimeout bounds the post-commit confirmation send.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	sequences ports.SequenceGenerator,
	dispatcher ports.NotificationDispatcher,
	dispatchTimeout time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequences:  sequences,
		resolver:   newEntryResolver(uowFactory, dispatcher, dispatchTimeout),
	}
}

// Handle processes the order creation command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	seq, err := h.sequences.Next(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(input.Name, input.SKU, input.Quantity, input.UnitPriceNet)
		if itemErr != nil {
			return CreateOrderResult{}, itemErr
		}
		items = append(items, item)
	}

	now := time.Now()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		seq,
		cmd.Country(),
		cmd.OrderType(),
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		items,
		cmd.ShippingNet(),
		cmd.SurchargesNet(),
		cmd.IsReverseCharge(),
		now,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	snapshot := outbox.SnapshotFromOrder(aggregate)
	entry, err := outbox.NewEntry(kernel.NewUUID(), aggregate.ID(), order.NotificationConfirmation, snapshot, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.EventRepository().Append(ctx, order.NewOrderCreatedEvent(aggregate.ID(), cmd.Actor(), now)); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.OutboxRepository().Add(ctx, entry); err != nil {
		return CreateOrderResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	sent, err := h.resolver.dispatchAndResolve(ctx, aggregate, entry, snapshot, cmd.Actor(), time.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:          aggregate.ID(),
		Seq:              aggregate.Seq(),
		OrderNo:          aggregate.OrderNo(),
		ConfirmationSent: sent,
	}, nil
}
