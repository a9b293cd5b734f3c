package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.Germany, order.TypeNormal,
		"Anna Schmidt", "anna@example.com",
		[]commands.ItemInput{{Name: "Workbench", SKU: "WB-1", Quantity: 1, UnitPriceNet: 100000}},
		8000, 2000, false, "shop",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	orders := new(MockOrderRepository)
	entries := new(MockOutboxRepository)
	events := new(MockEventRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	sequences := new(MockSequenceGenerator)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		sequences.On("Next", ctx).Return(int64(300042), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(entries).Once(),
		entries.On("Add", mock.Anything, mock.AnythingOfType("*outbox.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Send", mock.Anything, "order_confirmation", mock.AnythingOfType("outbox.Snapshot")).
			Return("provider-msg-1", nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(entries).Once(),
		entries.On("Update", mock.Anything, mock.AnythingOfType("*outbox.Entry")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, mock.AnythingOfType("*order.Order"), order.StatusReceived).Return(nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, dispatcher, time.Second)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(300042), result.Seq)
	assert.Equal(t, "300-042", result.OrderNo)
	assert.Equal(t, cmd.OrderID(), result.OrderID)
	assert.True(t, result.ConfirmationSent)
	mock.AssertExpectationsForObjects(t, orders, entries, events, uow, factory, sequences, dispatcher)
}

func TestCreateOrderCommandHandler_Handle_DispatchFailure(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	orders := new(MockOrderRepository)
	entries := new(MockOutboxRepository)
	events := new(MockEventRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	sequences := new(MockSequenceGenerator)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		sequences.On("Next", ctx).Return(int64(300042), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(entries).Once(),
		entries.On("Add", mock.Anything, mock.AnythingOfType("*outbox.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Send", mock.Anything, "order_confirmation", mock.AnythingOfType("outbox.Snapshot")).
			Return("", errors.New("smtp down")).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(entries).Once(),
		entries.On("Update", mock.Anything, mock.AnythingOfType("*outbox.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, dispatcher, time.Second)
	result, err := h.Handle(ctx, cmd)

	// The order creation committed; only the confirmation send failed.
	require.NoError(t, err)
	assert.False(t, result.ConfirmationSent)
	assert.Equal(t, "300-042", result.OrderNo)
	mock.AssertExpectationsForObjects(t, orders, entries, events, uow, factory, sequences, dispatcher)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	h := commands.NewCreateOrderCommandHandler(
		new(MockUoWFactory), new(MockSequenceGenerator), new(MockDispatcher), time.Second)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_SequenceError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	sequences := new(MockSequenceGenerator)
	sequences.On("Next", ctx).Return(int64(0), errors.New("sequence unavailable")).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockUoWFactory), sequences, new(MockDispatcher), time.Second)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	sequences.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	sequences := new(MockSequenceGenerator)

	mock.InOrder(
		sequences.On("Next", ctx).Return(int64(300042), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, sequences, new(MockDispatcher), time.Second)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	mock.AssertExpectationsForObjects(t, orders, uow, factory, sequences)
}
