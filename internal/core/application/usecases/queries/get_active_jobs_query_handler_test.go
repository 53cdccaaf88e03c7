package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for repository usage in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetActiveJobsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveJobsQueryHandler
	jobRepo   *jobrepo.GormJobRepository
}

func (suite *GetActiveJobsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&jobrepo.JobDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveJobsQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveJobsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_WithOnlyArchivedJobs_ReturnsEmptySlice() {
	suite.addJobInStatus(job.Archived)
	suite.addJobInStatus(job.Archived)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyActive() {
	bookedJob := suite.addJobInStatus(job.Booked)
	allocatedJob := suite.addJobInStatus(job.Allocated)
	completedJob := suite.addJobInStatus(job.Completed)
	archivedJob := suite.addJobInStatus(job.Archived)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}

	suite.True(resultIDs[bookedJob.ID()], "Booked job should be in results")
	suite.True(resultIDs[allocatedJob.ID()], "Allocated job should be in results")
	suite.True(resultIDs[completedJob.ID()], "Completed job should be in results")
	suite.False(resultIDs[archivedJob.ID()], "Archived job should not be in results")
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_CorrectlyMapsJobFields() {
	allocatedJob := suite.addJobInStatus(job.Allocated)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	response := result[0]
	suite.Equal(allocatedJob.ID(), response.ID)
	suite.Equal("curtain_sider", response.VehicleType)
	suite.Equal("Manchester", response.PickupRegion)
	suite.Equal("Leeds", response.DeliveryRegion)
	suite.Equal(int64(125000), response.AgreedAmount)
	suite.Equal("GBP", response.AgreedCurrency)
	suite.Equal("allocated", response.Status)
	suite.False(response.ProofOfDeliveryUploaded)
	suite.Require().NotNil(response.AssignedCarrierID)
	suite.True(response.AssignedCarrierID.IsEqual(*allocatedJob.AssignedCarrier()))
	suite.Equal(int64(1), response.Version)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_UnallocatedJob_HasNilCarrier() {
	suite.addJobInStatus(job.Booked)

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].AssignedCarrierID)
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_JobsAreSortedByID() {
	for range 3 {
		suite.addJobInStatus(job.Booked)
	}

	query := queries.NewGetActiveJobsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	for i := range len(result) - 1 {
		suite.Less(result[i].ID.String(), result[i+1].ID.String(),
			"Jobs should be sorted by ID")
	}
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveJobsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveJobsQuery constructor")
}

func (suite *GetActiveJobsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addJobInStatus(job.Booked)

	query := queries.NewGetActiveJobsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// addJobInStatus persists a job restored into the given lifecycle status.
func (suite *GetActiveJobsQueryHandlerTestSuite) addJobInStatus(status job.Status) *job.Job {
	requirements, err := job.NewRequirements("curtain_sider", "Manchester", "Leeds")
	suite.Require().NoError(err)
	money, err := kernel.NewMoney(125000, "GBP")
	suite.Require().NoError(err)

	var carrierID *kernel.UUID
	if status.IsAtOrBeyondAllocated() {
		id := kernel.NewUUID()
		carrierID = &id
	}

	var completedAt *time.Time
	if status == job.Completed || status == job.Archived {
		at := time.Now().Add(-time.Hour)
		completedAt = &at
	}

	pod := status == job.Completed || status == job.Archived

	testJob, err := job.RestoreJob(kernel.NewUUID(), requirements, money, status,
		carrierID, pod, job.Unknown, completedAt, 1)
	suite.Require().NoError(err)

	err = suite.jobRepo.Add(context.Background(), testJob)
	suite.Require().NoError(err)

	return testJob
}

func TestGetActiveJobsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveJobsQueryHandlerTestSuite))
}
