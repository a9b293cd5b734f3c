package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkEmailSentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusShipped, nil, false)
	cmd, err := commands.NewMarkEmailSentCommand(
		aggregate.ID(), order.NotificationShipped, "provider-msg-5", "webhook")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, aggregate, order.StatusShipped).Return(nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkEmailSentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, aggregate.EmailFlags().IsSent(order.NotificationShipped))
	mock.AssertExpectationsForObjects(t, orders, events, uow, factory)
}

func TestMarkEmailSentCommandHandler_Handle_AlreadySent(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusShipped, nil, false)
	_, err := aggregate.MarkEmailSent(order.NotificationShipped, aggregate.CreatedAt())
	require.NoError(t, err)

	cmd, err := commands.NewMarkEmailSentCommand(
		aggregate.ID(), order.NotificationShipped, "provider-msg-6", "webhook")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	// No order update: the flag did not change, only the event is appended.
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkEmailSentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	mock.AssertExpectationsForObjects(t, orders, events, uow, factory)
}

func TestMarkEmailSentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkEmailSentCommand{} // not constructed properly

	h := commands.NewMarkEmailSentCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkEmailSentCommandIsNotConstructed)
}
