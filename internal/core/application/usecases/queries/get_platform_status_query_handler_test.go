package queries_test

import (
	"context"
	"testing"
	"time"

	"vintage/internal/adapters/out/postgres/platformrepo"
	"vintage/internal/core/application/usecases/queries"
	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"
	"vintage/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPlatformStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPlatformStatusQueryHandler
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&platformrepo.PlatformDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPlatformStatusQueryHandler(db)
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE platforms CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) TestHandle_NoPlatformRow_ReturnsNotFoundError() {
	query := queries.NewGetPlatformStatusQuery()

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) TestHandle_SeededPlatform_ReturnsClockAndProfit() {
	vintage, err := platform.RestorePlatform(kernel.NewUUID(), kernel.NewDate(2024, time.June, 3), 12.5)
	suite.Require().NoError(err)

	repo := platformrepo.NewGormPlatformRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), vintage))

	query := queries.NewGetPlatformStatusQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.CurrentDate.IsEqual(kernel.NewDate(2024, time.June, 3)))
	suite.InDelta(12.5, result.VintageProfit, 1e-9)
}

func (suite *GetPlatformStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPlatformStatusQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPlatformStatusQuery constructor")
}

func TestGetPlatformStatusQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(GetPlatformStatusQueryHandlerTestSuite))
}
