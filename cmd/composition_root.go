package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notify.NewLogDispatcher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.newUoWFactory(),
		postgres.NewGormSequenceGenerator(c.gormDB),
		c.dispatcher,
		c.config.DispatchTimeout,
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.newOrderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.newUoWFactory(), c.dispatcher, c.config.DispatchTimeout)
}

func (c *CompositionRoot) CreateMarkEmailSentCommandHandler() commands.MarkEmailSentCommandHandler {
	return commands.NewMarkEmailSentCommandHandler(c.newOrderUoWFactory())
}

func (c *CompositionRoot) CreateProcessDueTransitionsCommandHandler() commands.ProcessDueTransitionsCommandHandler {
	return commands.NewProcessDueTransitionsCommandHandler(
		c.newUoWFactory(),
		c.dispatcher,
		c.config.DispatchTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSendWeekendHellosCommandHandler() commands.SendWeekendHellosCommandHandler {
	return commands.NewSendWeekendHellosCommandHandler(
		c.newUoWFactory(),
		c.dispatcher,
		c.config.DispatchTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRunSchedulerCommandHandler() commands.RunSchedulerCommandHandler {
	return commands.NewRunSchedulerCommandHandler(
		c.CreateProcessDueTransitionsCommandHandler(),
		c.CreateSendWeekendHellosCommandHandler(),
	)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPendingNotificationsQueryHandler() queries.ListPendingNotificationsQueryHandler {
	return queries.NewListPendingNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
