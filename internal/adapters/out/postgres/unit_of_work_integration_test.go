package postgres_test

import (
	"context"
	"testing"
	"time"

	fulfillmentpg "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that one unit of work spans the
// order, outbox and event repositories atomically.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *fulfillmentpg.GormUnitOfWorkFactory
	seq       int64
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(fulfillmentpg.Migrate(db))
	suite.factory = fulfillmentpg.NewGormUnitOfWorkFactory(db)
	suite.seq = 310000
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, outbox_entries, order_events").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderOutboxAndEventTogether() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	now := aggregate.CreatedAt()

	entry, err := outbox.NewEntry(
		kernel.NewUUID(), aggregate.ID(), order.NotificationConfirmation,
		outbox.SnapshotFromOrder(aggregate), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.EventRepository().Append(ctx, order.NewOrderCreatedEvent(aggregate.ID(), "shop", now)))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work without an active transaction reads the main
	// connection and must see everything.
	reader := suite.factory.Create()

	storedOrder, err := reader.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReceived, storedOrder.Status())

	storedEntry, err := reader.OutboxRepository().Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(outbox.EntryPending, storedEntry.Status())

	trail, err := reader.EventRepository().ListByOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(trail, 1)
	suite.Equal(order.EventOrderCreated, trail[0].Kind)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.EventRepository().Append(ctx,
		order.NewOrderCreatedEvent(aggregate.ID(), "shop", aggregate.CreatedAt())))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()

	_, err := reader.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err)

	trail, err := reader.EventRepository().ListByOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(trail)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsDiscardableNoOp() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// The deferred rollback of the usage pattern lands here.
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), stored.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxResolution_SingleResolutionSurvivesRoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	now := aggregate.CreatedAt()

	entry, err := outbox.NewEntry(
		kernel.NewUUID(), aggregate.ID(), order.NotificationConfirmation,
		outbox.SnapshotFromOrder(aggregate), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(entry.MarkSent("provider-msg-11", now.Add(time.Second)))

	resolver := suite.factory.Create()
	suite.Require().NoError(resolver.Begin(ctx))
	suite.Require().NoError(resolver.OutboxRepository().Update(ctx, entry))
	suite.Require().NoError(resolver.Commit(ctx))

	stored, err := suite.factory.Create().OutboxRepository().Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(outbox.EntrySent, stored.Status())
	suite.Equal("provider-msg-11", stored.ProviderMessageID())
	suite.Require().NotNil(stored.ResolvedAt())

	// The restored entry is already resolved; a second resolution must fail.
	suite.Require().Error(stored.MarkFailed("late failure", now.Add(2*time.Second)))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPendingListing_OldestFirst() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	base := aggregate.CreatedAt()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for i := range 3 {
		entry, err := outbox.NewEntry(
			kernel.NewUUID(), aggregate.ID(), order.NotificationConfirmation,
			outbox.SnapshotFromOrder(aggregate), base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(uow.OutboxRepository().Add(ctx, entry))
	}
	suite.Require().NoError(uow.Commit(ctx))

	pending, err := suite.factory.Create().OutboxRepository().GetAllPending(ctx, 2)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 2)
	suite.True(pending[0].CreatedAt().Before(pending[1].CreatedAt()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewItem("Workbench", "WB-1", 1, 100000)
	suite.Require().NoError(err)

	suite.seq++
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), suite.seq, kernel.Germany, order.TypeNormal,
		"Anna Schmidt", "anna@example.com",
		[]order.Item{item}, 0, 0, false,
		time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
