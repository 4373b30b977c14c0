package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/adapters/out/postgres/pgtest"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIDs() {
	ctx := context.Background()

	first := suite.newOrder("Asha", "Metro City", 8, "BlueDart")
	second := suite.newOrder("Ravi", "Urban Zone", 15, "Delhivery")

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Equal(int64(1), first.ID())
	suite.Equal(int64(2), second.ID())
	suite.assertOrderCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsAllFields() {
	ctx := context.Background()
	o := suite.newOrder("Meera", "Rural Village", 50, "IndiaPost")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.database.DB.First(&dto, o.ID()).Error)
	suite.Equal("Meera", dto.CustomerName)
	suite.Equal("Rural Village", dto.Destination)
	suite.InDelta(50.0, dto.Weight, 0)
	suite.Equal("IndiaPost", dto.Courier)
	suite.Equal("Pending", dto.Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SameOrderTwice_IsRejected() {
	ctx := context.Background()
	o := suite.newOrder("Asha", "Metro City", 8, "BlueDart")

	suite.Require().NoError(suite.repository.Add(ctx, o))
	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, orderrepo.ErrOrderIsAlreadyStored)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	o := suite.newOrder("Asha", "Metro City", 8, "BlueDart")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.GetForUpdate(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())
	suite.Equal(o.CustomerName(), loaded.CustomerName())
	suite.Equal(o.Destination(), loaded.Destination())
	suite.True(o.Weight().IsEqual(loaded.Weight()))
	suite.Equal(o.Courier(), loaded.Courier())
	suite.Equal(order.Pending, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.GetForUpdate(context.Background(), 12345)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_OverwritesWithoutValidation() {
	ctx := context.Background()
	o := suite.newOrder("Asha", "Metro City", 8, "BlueDart")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	for _, status := range []order.Status{order.Delivered, order.Pending, "Lost"} {
		suite.Require().NoError(suite.repository.UpdateStatus(ctx, o.ID(), status))

		loaded, err := suite.repository.GetForUpdate(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(status, loaded.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.UpdateStatus(context.Background(), 999, order.Delivered)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NonPositiveWeight_RejectedByCheckConstraint() {
	err := suite.database.DB.Exec(
		`INSERT INTO orders (customer_name, destination, weight, courier) VALUES ('x', 'Metro', 0, 'BlueDart')`,
	).Error

	suite.Require().Error(err)
	suite.assertOrderCount(0)
}

// TestGetForUpdate_SerializesConcurrentWriters holds the row lock in one transaction
// and checks that a second locking read waits until the first commits.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentWriters() {
	ctx := context.Background()
	o := suite.newOrder("Asha", "Metro City", 8, "BlueDart")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first := suite.database.DB.Begin()
	suite.Require().NoError(first.Error)
	_, err := orderrepo.NewGormOrderRepository(first).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	var (
		wg       sync.WaitGroup
		seen     order.Status
		waitErr  error
		released = make(chan struct{})
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		second := suite.database.DB.Begin()
		defer second.Rollback()

		loaded, getErr := orderrepo.NewGormOrderRepository(second).GetForUpdate(ctx, o.ID())
		select {
		case <-released:
		default:
			getErr = errs.NewValueIsInvalidError("lock was not held")
		}
		if getErr != nil {
			waitErr = getErr
			return
		}
		seen = loaded.Status()
	}()

	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(first).UpdateStatus(ctx, o.ID(), order.InTransit))
	close(released)
	suite.Require().NoError(first.Commit().Error)

	wg.Wait()
	suite.Require().NoError(waitErr)
	suite.Equal(order.InTransit, seen)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(
	customerName, destination string,
	weight float64,
	courier string,
) *order.Order {
	o, err := order.NewOrder(customerName, destination, kernel.MustNewWeight(weight), courier)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
