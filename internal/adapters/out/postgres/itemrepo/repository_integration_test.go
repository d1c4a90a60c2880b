package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"vintage/internal/adapters/out/postgres/itemrepo"
	"vintage/internal/core/domain/model/item"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ItemRepositoryIntegrationTestSuite provides integration tests for
// ItemRepository using PostgreSQL containers, with focus on the ownership
// log round trip that the return flow depends on.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *itemrepo.GormItemRepository
	tracker    *MockAggregateTracker
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}, &itemrepo.OwnershipRecordDTO{}))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items, item_ownership_records").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = itemrepo.NewGormItemRepository(suite.db, suite.tracker)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAdd_ValidItem_Success() {
	ctx := context.Background()

	testItem := suite.createTestItem()
	suite.tracker.On("TrackAggregate", testItem.ID(), testItem).Once()

	err := suite.repository.Add(ctx, testItem)
	suite.Require().NoError(err)

	retrievedItem, err := suite.repository.Get(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.Equal(testItem.ID(), retrievedItem.ID())
	suite.Equal(testItem.OwnerID(), retrievedItem.OwnerID())
	suite.Equal("leather jacket", retrievedItem.Description())
	suite.Equal("acme", retrievedItem.Brand())
	suite.InDelta(10.0, retrievedItem.BasePrice(), 1e-9)
	suite.InDelta(3.5, retrievedItem.Price(), 1e-9)
	suite.InDelta(0.5, retrievedItem.ConditionScore(), 1e-9)
	suite.True(retrievedItem.IsListed())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedItem, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedItem)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_OwnershipLogSurvivesRoundTrip() {
	ctx := context.Background()

	testItem := suite.createTestItem()
	sellerID := testItem.OwnerID()
	suite.tracker.On("TrackAggregate", testItem.ID(), testItem).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testItem))

	firstBuyer := kernel.NewUUID()
	suite.Require().NoError(testItem.HandOverTo(firstBuyer, kernel.NewDate(2024, time.June, 1)))
	suite.Require().NoError(suite.repository.Update(ctx, testItem))

	suite.Require().NoError(testItem.Relist())
	secondBuyer := kernel.NewUUID()
	suite.Require().NoError(testItem.HandOverTo(secondBuyer, kernel.NewDate(2024, time.June, 10)))
	suite.Require().NoError(suite.repository.Update(ctx, testItem))

	retrievedItem, err := suite.repository.Get(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.Equal(secondBuyer, retrievedItem.OwnerID())
	suite.True(retrievedItem.IsHeld())

	// The log preserves append order: seller first, then the first buyer
	log := retrievedItem.OwnershipLog()
	suite.Require().Len(log, 2)
	suite.Equal(sellerID, log[0].OwnerID())
	suite.True(log[0].From().IsEqual(kernel.NewDate(2024, time.June, 1)))
	suite.Equal(firstBuyer, log[1].OwnerID())
	suite.True(log[1].From().IsEqual(kernel.NewDate(2024, time.June, 10)))

	previousOwner, ok := retrievedItem.PreviousOwner()
	suite.Require().True(ok)
	suite.Equal(firstBuyer, previousOwner)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_ReturnShrinksPersistedOwnershipLog() {
	ctx := context.Background()

	testItem := suite.createTestItem()
	sellerID := testItem.OwnerID()
	suite.tracker.On("TrackAggregate", testItem.ID(), testItem).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testItem))

	buyer := kernel.NewUUID()
	suite.Require().NoError(testItem.HandOverTo(buyer, kernel.NewDate(2024, time.June, 1)))
	suite.Require().NoError(suite.repository.Update(ctx, testItem))

	suite.Require().NoError(testItem.ReturnToPreviousOwner())
	suite.Require().NoError(suite.repository.Update(ctx, testItem))

	retrievedItem, err := suite.repository.Get(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerID, retrievedItem.OwnerID())
	suite.True(retrievedItem.IsListed())
	suite.Empty(retrievedItem.OwnershipLog())

	var recordCount int64
	suite.Require().NoError(suite.db.Model(&itemrepo.OwnershipRecordDTO{}).
		Where("item_id = ?", testItem.ID().Bytes()).Count(&recordCount).Error)
	suite.Equal(int64(0), recordCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_ReservedStatusSurvivesRoundTrip() {
	ctx := context.Background()

	testItem := suite.createTestItem()
	suite.tracker.On("TrackAggregate", testItem.ID(), testItem).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testItem))

	suite.Require().NoError(testItem.Reserve())
	suite.Require().NoError(suite.repository.Update(ctx, testItem))

	retrievedItem, err := suite.repository.Get(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.True(retrievedItem.IsReserved())

	listed, err := suite.repository.GetAllListed(ctx)
	suite.Require().NoError(err)
	suite.Empty(listed)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetAllListed_FiltersHeldItems() {
	ctx := context.Background()

	listedItem := suite.createTestItem()
	heldItem := suite.createTestItem()
	suite.Require().NoError(heldItem.HandOverTo(kernel.NewUUID(), kernel.NewDate(2024, time.June, 1)))

	suite.tracker.On("TrackAggregate", listedItem.ID(), listedItem).Once()
	suite.tracker.On("TrackAggregate", heldItem.ID(), heldItem).Once()
	suite.Require().NoError(suite.repository.Add(ctx, listedItem))
	suite.Require().NoError(suite.repository.Add(ctx, heldItem))

	listed, err := suite.repository.GetAllListed(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(listedItem.ID(), listed[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) createTestItem() *item.Item {
	testItem, err := item.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"correios",
		"leather jacket",
		"acme",
		10.0,
		3.5,
		0.5,
	)
	suite.Require().NoError(err)

	return testItem
}

// TestItemRepositoryIntegrationTestSuite runs the integration test suite.
// Requires Docker for PostgreSQL containers.
func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
