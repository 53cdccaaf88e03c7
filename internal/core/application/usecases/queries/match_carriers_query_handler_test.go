package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobRepository is a mock implementation of ports.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllActive(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

// MockCarrierRepository is a mock implementation of ports.CarrierRepository.
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAll(
	ctx context.Context, filter ports.CarrierFilter,
) ([]*carrier.Carrier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func matchTestJob(t *testing.T) *job.Job {
	t.Helper()

	requirements, err := job.NewRequirements("curtain_sider", "Manchester", "Leeds")
	require.NoError(t, err)
	money, err := kernel.NewMoney(125000, "GBP")
	require.NoError(t, err)

	testJob, err := job.NewJob(kernel.NewUUID(), requirements, money)
	require.NoError(t, err)
	return testJob
}

func matchTestCarrier(t *testing.T, name string, regions []string) *carrier.Carrier {
	t.Helper()

	issueDate := time.Now().AddDate(-1, 0, 0)
	expiryDate := time.Now().AddDate(1, 0, 0)

	documents := make([]carrier.ComplianceDocument, 0, 3)
	for _, docType := range services.DefaultRequiredDocumentTypes() {
		doc, err := carrier.NewComplianceDocument(docType, issueDate, expiryDate)
		require.NoError(t, err)
		documents = append(documents, doc)
	}

	testCarrier, err := carrier.NewCarrier(
		kernel.NewUUID(),
		name,
		regions,
		[]string{"Curtain-side"},
		[]string{"Road Freight"},
		true,
		documents,
	)
	require.NoError(t, err)
	return testCarrier
}

func newMatchHandler(
	jobRepo *MockJobRepository, carrierRepo *MockCarrierRepository,
) queries.MatchCarriersQueryHandler {
	matcher := services.NewCarrierMatcher(services.NewComplianceEvaluator(nil, 0))
	return queries.NewMatchCarriersQueryHandler(jobRepo, carrierRepo, matcher)
}

func TestMatchCarriersQueryHandler_Handle_RanksCarriersBestFirst(t *testing.T) {
	testJob := matchTestJob(t)
	strongCarrier := matchTestCarrier(t, "Apex Logistics", []string{"Manchester"})
	weakCarrier := matchTestCarrier(t, "Midland Carriers", []string{"Birmingham"})

	jobRepo := new(MockJobRepository)
	carrierRepo := new(MockCarrierRepository)
	jobRepo.On("Get", mock.Anything, testJob.ID()).Return(testJob, nil)
	carrierRepo.On("GetAll", mock.Anything, ports.CarrierFilter{}).
		Return([]*carrier.Carrier{weakCarrier, strongCarrier}, nil)

	query, err := queries.NewMatchCarriersQuery(testJob.ID())
	require.NoError(t, err)

	handler := newMatchHandler(jobRepo, carrierRepo)
	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, strongCarrier.ID(), result[0].CarrierID)
	assert.Equal(t, "Apex Logistics", result[0].CarrierName)
	assert.Greater(t, result[0].Score, result[1].Score)
	assert.Equal(t, "compliant", result[0].ComplianceStatus)
	assert.NotEmpty(t, result[0].Reasons)

	jobRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
}

func TestMatchCarriersQueryHandler_Handle_EmptyDirectory_ReturnsEmptySlice(t *testing.T) {
	testJob := matchTestJob(t)

	jobRepo := new(MockJobRepository)
	carrierRepo := new(MockCarrierRepository)
	jobRepo.On("Get", mock.Anything, testJob.ID()).Return(testJob, nil)
	carrierRepo.On("GetAll", mock.Anything, ports.CarrierFilter{}).
		Return([]*carrier.Carrier{}, nil)

	query, err := queries.NewMatchCarriersQuery(testJob.ID())
	require.NoError(t, err)

	handler := newMatchHandler(jobRepo, carrierRepo)
	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMatchCarriersQueryHandler_Handle_JobNotFound_ReturnsError(t *testing.T) {
	jobID := kernel.NewUUID()

	jobRepo := new(MockJobRepository)
	carrierRepo := new(MockCarrierRepository)
	jobRepo.On("Get", mock.Anything, jobID).
		Return(nil, errs.NewObjectNotFoundError("jobId", jobID))

	query, err := queries.NewMatchCarriersQuery(jobID)
	require.NoError(t, err)

	handler := newMatchHandler(jobRepo, carrierRepo)
	result, err := handler.Handle(context.Background(), query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, result)

	carrierRepo.AssertNotCalled(t, "GetAll")
}

func TestMatchCarriersQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	jobRepo := new(MockJobRepository)
	carrierRepo := new(MockCarrierRepository)

	handler := newMatchHandler(jobRepo, carrierRepo)
	result, err := handler.Handle(context.Background(), queries.MatchCarriersQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrMatchCarriersQueryIsNotConstructed)
	assert.Nil(t, result)

	jobRepo.AssertNotCalled(t, "Get")
}
