package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "orderbot/internal/adapters/out/postgres"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL database seeded with the default menu.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	conn      *postgres_adapter.DB
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	conn, err := postgres_adapter.ConnectDSN(ctx, dsn, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.Require().NoError(err)
	suite.conn = conn
	suite.db = conn.Gorm

	suite.Require().NoError(postgres_adapter.Migrate(ctx, suite.db))
	suite.Require().NoError(postgres_adapter.SeedMenu(ctx, suite.db, postgres_adapter.DefaultMenu))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_tracking").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.conn.Close()
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPlacesOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	id, err := repo.NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), id.Int64())

	placed := suite.newOrder(id, "Pav Bhaji", 2, "Mango Lassi", 1)
	suite.Require().NoError(repo.Add(ctx, placed))

	total, err := repo.TotalPrice(ctx, id)
	suite.Require().NoError(err)
	suite.InDelta(17.0, total, 1e-9)

	suite.Require().NoError(uow.Commit(ctx))

	status, found, err := suite.factory.Create().OrderRepository().Status(ctx, id)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(order.InProgress, status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndFreesID() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	id, err := repo.NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, suite.newOrder(id, "Samosa", 3)))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create().OrderRepository()
	_, found, err := fresh.Status(ctx, id)
	suite.Require().NoError(err)
	suite.False(found)

	next, err := fresh.NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.True(next.IsEqual(id), "rolled back id is allocated again")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UnknownItemLeavesNoPartialOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	id, err := repo.NextOrderID(ctx)
	suite.Require().NoError(err)

	err = repo.Add(ctx, suite.newOrder(id, "Pizza", 1, "Chowmein", 2))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))

	var rows int64
	suite.Require().NoError(suite.db.Table("orders").Count(&rows).Error)
	suite.Zero(rows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAllocationIsSerialized() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	firstID, err := first.OrderRepository().NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(first.OrderRepository().Add(ctx, suite.newOrder(firstID, "Vada Pav", 1)))

	type result struct {
		id  kernel.OrderID
		err error
	}
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	done := make(chan result, 1)
	go func() {
		id, nextErr := second.OrderRepository().NextOrderID(ctx)
		done <- result{id, nextErr}
	}()

	select {
	case <-done:
		suite.FailNow("second allocation must wait for the first transaction")
	case <-time.After(200 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))

	res := <-done
	suite.Require().NoError(res.err)
	suite.Equal(firstID.Int64()+1, res.id.Int64())
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(id kernel.OrderID, pairs ...any) *order.Order {
	lines := make([]order.Line, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		line, err := order.NewLine(pairs[i].(string), pairs[i+1].(int))
		suite.Require().NoError(err)
		lines = append(lines, line)
	}
	o, err := order.NewOrder(id, lines)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
