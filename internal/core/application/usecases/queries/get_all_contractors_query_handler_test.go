package queries_test

import (
	"context"
	"testing"
	"time"

	"jobmatch/internal/adapters/out/postgres/contractorrepo"
	"jobmatch/internal/core/application/usecases/queries"
	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllContractorsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllContractorsQueryHandler
}

func (suite *GetAllContractorsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&contractorrepo.ContractorDTO{}, &contractorrepo.SkillDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllContractorsQueryHandler(db)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllContractorsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE contractors CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllContractorsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TestHandle_WithContractors_ReturnsAllOrderedByName() {
	contractors := suite.createTestContractors()
	suite.saveContractors(contractors)

	query := queries.NewGetAllContractorsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	suite.Equal("Alice", result[0].Name)
	suite.Equal(contractors[0].ID(), result[0].ID)
	suite.Equal("A", result[0].Grade)
	suite.InDelta(4.9, result[0].Rating, 1e-9)
	isEqual, err := contractors[0].Location().IsEqual(result[0].Location)
	suite.Require().NoError(err)
	suite.True(isEqual)

	suite.Equal("Bob", result[1].Name)
	suite.Equal(contractors[1].ID(), result[1].ID)
	suite.Equal("C", result[1].Grade)

	suite.Equal("Charlie", result[2].Name)
	suite.Equal(contractors[2].ID(), result[2].ID)
	suite.Equal("B", result[2].Grade)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TestHandle_ReportsAvailabilityFlags() {
	offDuty := suite.createContractor("Off Duty", contractor.GradeB, 4.2)
	offDuty.MarkUnavailable()

	retired := suite.createContractor("Retired", contractor.GradeC, 3.8)
	retired.Deactivate()

	suite.saveContractors([]*contractor.Contractor{offDuty, retired})

	query := queries.NewGetAllContractorsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	suite.Equal("Off Duty", result[0].Name)
	suite.True(result[0].Active)
	suite.False(result[0].Available)

	suite.Equal("Retired", result[1].Name)
	suite.False(result[1].Active)
	suite.True(result[1].Available)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllContractorsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllContractorsQuery constructor")
}

func (suite *GetAllContractorsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.saveContractors(suite.createTestContractors())

	query := queries.NewGetAllContractorsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllContractorsQueryHandlerTestSuite) createTestContractors() []*contractor.Contractor {
	return []*contractor.Contractor{
		suite.createContractor("Alice", contractor.GradeA, 4.9),
		suite.createContractor("Bob", contractor.GradeC, 3.9),
		suite.createContractor("Charlie", contractor.GradeB, 4.4),
	}
}

func (suite *GetAllContractorsQueryHandlerTestSuite) createContractor(
	name string, grade contractor.Grade, rating float64,
) *contractor.Contractor {
	location, err := kernel.NewGeoLocation(40.0, -75.0)
	suite.Require().NoError(err)

	c, err := contractor.NewContractor(
		kernel.NewUUID(), name, grade, rating, []string{"plumbing"}, location,
	)
	suite.Require().NoError(err)

	return c
}

func (suite *GetAllContractorsQueryHandlerTestSuite) saveContractors(contractors []*contractor.Contractor) {
	repo := contractorrepo.NewGormContractorRepository(suite.db, &mockAggregateTracker{})
	for _, c := range contractors {
		err := repo.Add(context.Background(), c)
		suite.Require().NoError(err)
	}
}

func TestGetAllContractorsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllContractorsQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for seeding query test data.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
