package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunSchedulerCommandHandler_Handle_AggregatesBothPhases(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd, err := commands.NewRunSchedulerCommand(now)
	require.NoError(t, err)

	due := now.Add(-time.Minute)
	aggregate := restoredOrder(t, order.StatusReceived, &due, false)

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetAllDue", ctx, now).Return([]*order.Order{aggregate}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Update", mock.Anything, aggregate, order.StatusReceived).Return(nil).Once(),
		uow.On("EventRepository").Return(events).Once(),
		events.On("Append", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetAllNeedingWeekendHello", ctx).Return([]*order.Order{}, nil).Once(),
	)

	h := commands.NewRunSchedulerCommandHandler(
		commands.NewProcessDueTransitionsCommandHandler(factory, new(MockDispatcher), time.Second, discardLogger()),
		commands.NewSendWeekendHellosCommandHandler(factory, new(MockDispatcher), time.Second, discardLogger()),
	)
	summary, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SchedulerSummary{
		Transitions:   commands.BatchResult{Processed: 1},
		WeekendHellos: commands.BatchResult{},
	}, summary)
	mock.AssertExpectationsForObjects(t, orders, events, uow, factory)
}

func TestRunSchedulerCommandHandler_Handle_TransitionListErrorAbortsRun(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd, err := commands.NewRunSchedulerCommand(now)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetAllDue", ctx, now).Return(nil, errors.New("query failed")).Once(),
	)

	h := commands.NewRunSchedulerCommandHandler(
		commands.NewProcessDueTransitionsCommandHandler(factory, new(MockDispatcher), time.Second, discardLogger()),
		commands.NewSendWeekendHellosCommandHandler(factory, new(MockDispatcher), time.Second, discardLogger()),
	)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	orders.AssertNotCalled(t, "GetAllNeedingWeekendHello", mock.Anything)
	mock.AssertExpectationsForObjects(t, orders, uow, factory)
}

func TestRunSchedulerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RunSchedulerCommand{} // not constructed properly

	h := commands.RunSchedulerCommandHandler{}
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRunSchedulerCommandIsNotConstructed)
}
