package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for repository setup in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetAllMenusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllMenusQueryHandler
	menuRepo  *menurepo.GormMenuRepository
}

func (suite *GetAllMenusQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&menurepo.MenuDTO{}, &menurepo.MenuProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllMenusQueryHandler(db)
	suite.menuRepo = menurepo.NewGormMenuRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllMenusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllMenusQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menus CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllMenusQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllMenusQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllMenusQueryHandlerTestSuite) TestHandle_WithMenus_ReturnsMenusWithProducts() {
	ctx := context.Background()

	firstProduct := kernel.NewUUID()
	secondProduct := kernel.NewUUID()
	first := suite.createTestMenu("Fried Chicken Set", 16000, []menu.MenuProduct{
		suite.createMenuProduct(firstProduct, 2),
	})
	second := suite.createTestMenu("Family Feast", 32000, []menu.MenuProduct{
		suite.createMenuProduct(firstProduct, 2),
		suite.createMenuProduct(secondProduct, 1),
	})
	suite.Require().NoError(suite.menuRepo.Add(ctx, first))
	suite.Require().NoError(suite.menuRepo.Add(ctx, second))

	query := queries.NewGetAllMenusQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[kernel.UUID]queries.GetAllMenusQueryResponse)
	for _, r := range result {
		byID[r.ID] = r
	}

	gotFirst, ok := byID[first.ID()]
	suite.Require().True(ok, "First menu should be in results")
	suite.Equal("Fried Chicken Set", gotFirst.Name)
	suite.Equal(int64(16000), gotFirst.PriceMinorUnits)
	suite.Equal(first.MenuGroupID(), gotFirst.MenuGroupID)
	suite.Require().Len(gotFirst.Products, 1)
	suite.Equal(firstProduct, gotFirst.Products[0].ProductID)
	suite.Equal(int64(2), gotFirst.Products[0].Quantity)

	gotSecond, ok := byID[second.ID()]
	suite.Require().True(ok, "Second menu should be in results")
	suite.Len(gotSecond.Products, 2)
}

func (suite *GetAllMenusQueryHandlerTestSuite) createTestMenu(
	name string,
	priceMinorUnits int64,
	products []menu.MenuProduct,
) *menu.Menu {
	price, err := kernel.NewPrice(priceMinorUnits)
	suite.Require().NoError(err)

	m, err := menu.NewMenu(kernel.NewUUID(), name, price, kernel.NewUUID(), products)
	suite.Require().NoError(err)
	return m
}

func (suite *GetAllMenusQueryHandlerTestSuite) createMenuProduct(productID kernel.UUID, quantity int64) menu.MenuProduct {
	mp, err := menu.NewMenuProduct(productID, quantity)
	suite.Require().NoError(err)
	return mp
}

func TestGetAllMenusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllMenusQueryHandlerTestSuite))
}
