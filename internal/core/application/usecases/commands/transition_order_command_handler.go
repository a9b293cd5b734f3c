package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler applies a manually requested status
// transition. The edge is validated by the aggregate; a disallowed edge
// surfaces as errs.ErrInvalidTransition and is never auto-retried.
//
// The status write is guarded by the status that was read, so a concurrent
// scheduler run or operator action surfaces as errs.ErrConcurrentUpdate
// instead of silently double-applying.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for manual transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command, persisting the new status and
// exactly one status_changed event.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if at := cmd.NextStatusAt(); at != nil {
		if err = aggregate.ScheduleNextStatus(*at); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate, from); err != nil {
		return err
	}

	now := time.Now()
	event := order.NewStatusChangedEvent(aggregate.ID(), from, aggregate.Status(), cmd.Actor(), now)
	if err = uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
