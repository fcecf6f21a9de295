package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_WithOrders_ReturnsStatusAndLineItems() {
	ctx := context.Background()

	cooking := suite.createTestOrder(2)
	completed := suite.createTestOrder(1)
	suite.Require().NoError(completed.ChangeStatus(order.Meal))
	suite.Require().NoError(completed.ChangeStatus(order.Completion))

	suite.Require().NoError(suite.orderRepo.Add(ctx, cooking))
	suite.Require().NoError(suite.orderRepo.Add(ctx, completed))

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[kernel.UUID]queries.GetAllOrdersQueryResponse)
	for _, r := range result {
		byID[r.ID] = r
	}

	gotCooking, ok := byID[cooking.ID()]
	suite.Require().True(ok, "Cooking order should be in results")
	suite.Equal(order.Cooking.String(), gotCooking.Status)
	suite.Equal(cooking.OrderTableID(), gotCooking.OrderTableID)
	suite.Require().Len(gotCooking.LineItems, 2)
	suite.Equal(cooking.LineItems()[0].MenuID(), gotCooking.LineItems[0].MenuID)
	suite.WithinDuration(cooking.OrderedAt(), gotCooking.OrderedAt, time.Second)

	gotCompleted, ok := byID[completed.ID()]
	suite.Require().True(ok, "Completed order should be in results")
	suite.Equal(order.Completion.String(), gotCompleted.Status)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) createTestOrder(lineCount int) *order.Order {
	lineItems := make([]order.LineItem, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		lineItem, err := order.NewLineItem(kernel.NewUUID(), int64(i+1))
		suite.Require().NoError(err)
		lineItems = append(lineItems, lineItem)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), lineItems)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
