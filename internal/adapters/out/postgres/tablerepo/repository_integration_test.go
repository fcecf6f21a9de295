package tablerepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/tablerepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderTableRepositoryIntegrationTestSuite provides integration tests for
// OrderTableRepository using PostgreSQL containers to verify persistence
// behavior, including group membership round trips.
type OrderTableRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tablerepo.GormOrderTableRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderTableRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	suite.Require().NoError(db.AutoMigrate(&tablerepo.OrderTableDTO{}))
}

func (suite *OrderTableRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_tables").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tablerepo.NewGormOrderTableRepository(suite.db, suite.tracker, false)
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestAdd_NewTable_StartsEmpty() {
	ctx := context.Background()

	testTable := suite.createTestTable()
	suite.tracker.On("TrackAggregate", testTable.ID(), testTable).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testTable))

	retrieved, err := suite.repository.Get(ctx, testTable.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEmpty())
	suite.Zero(retrieved.NumberOfGuests())
	suite.Nil(retrieved.TableGroupID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestGet_UnknownTable_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestUpdate_OccupancyAndGuests_Persisted() {
	ctx := context.Background()

	testTable := suite.createTestTable()
	suite.tracker.On("TrackAggregate", testTable.ID(), testTable).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testTable))

	suite.Require().NoError(testTable.ChangeEmpty(false))
	suite.Require().NoError(testTable.ChangeNumberOfGuests(4))
	suite.Require().NoError(suite.repository.Update(ctx, testTable))

	retrieved, err := suite.repository.Get(ctx, testTable.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsEmpty())
	suite.Equal(4, retrieved.NumberOfGuests())
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestUpdate_GroupMembership_RoundTrips() {
	ctx := context.Background()

	testTable := suite.createTestTable()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTable))

	groupID := kernel.NewUUID()
	suite.Require().NoError(testTable.AssignGroup(groupID))
	suite.Require().NoError(suite.repository.Update(ctx, testTable))

	retrieved, err := suite.repository.Get(ctx, testTable.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.TableGroupID())
	suite.True(groupID.IsEqual(*retrieved.TableGroupID()))
	suite.False(retrieved.IsEmpty())

	// Ungrouping clears the membership column back to NULL
	retrieved.Ungroup()
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	ungrouped, err := suite.repository.Get(ctx, testTable.ID())
	suite.Require().NoError(err)
	suite.Nil(ungrouped.TableGroupID())
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestGetByIDs_SkipsUnknownIdentifiers() {
	ctx := context.Background()

	first := suite.createTestTable()
	second := suite.createTestTable()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	tables, err := suite.repository.GetByIDs(ctx, []kernel.UUID{first.ID(), second.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Len(tables, 2)
}

func (suite *OrderTableRepositoryIntegrationTestSuite) TestGetByGroupID_ReturnsMembersOnly() {
	ctx := context.Background()

	groupID := kernel.NewUUID()
	member := suite.createTestTable()
	suite.Require().NoError(member.AssignGroup(groupID))
	outsider := suite.createTestTable()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, member))
	suite.Require().NoError(suite.repository.Add(ctx, outsider))

	members, err := suite.repository.GetByGroupID(ctx, groupID)
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.True(member.ID().IsEqual(members[0].ID()))
}

func (suite *OrderTableRepositoryIntegrationTestSuite) createTestTable() *table.OrderTable {
	testTable, err := table.NewOrderTable(kernel.NewUUID())
	suite.Require().NoError(err)
	return testTable
}

func TestOrderTableRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderTableRepositoryIntegrationTestSuite))
}
