package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

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

type MockCarrierRepository struct{ mock.Mock }

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

type MockEffectScheduler struct{ mock.Mock }

func (m *MockEffectScheduler) Schedule(ctx context.Context, effect job.DeferredEffect, dueAt time.Time) error {
	args := m.Called(ctx, effect, dueAt)
	return args.Error(0)
}

func (m *MockEffectScheduler) Cancel(ctx context.Context, jobID kernel.UUID, kind job.EffectKind) error {
	args := m.Called(ctx, jobID, kind)
	return args.Error(0)
}

func (m *MockEffectScheduler) GetDue(ctx context.Context, asOf time.Time) ([]ports.ScheduledEffect, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ScheduledEffect), args.Error(1)
}

func (m *MockEffectScheduler) MarkCompleted(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockJobUoW) EffectScheduler() ports.EffectScheduler {
	args := m.Called()
	return args.Get(0).(ports.EffectScheduler)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockCarrierUoW struct{ mock.Mock }

func (m *MockCarrierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCarrierUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) EffectScheduler() ports.EffectScheduler {
	args := m.Called()
	return args.Get(0).(ports.EffectScheduler)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Aggregate fixtures

func testRequirements(t *testing.T) job.Requirements {
	t.Helper()
	requirements, err := job.NewRequirements("curtain_sider", "Manchester", "Leeds")
	require.NoError(t, err)
	return requirements
}

func testMoney(t *testing.T) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(125000, "GBP")
	require.NoError(t, err)
	return money
}

// jobInStatus restores a consistent job fixture in the given status.
// Jobs at or beyond allocation carry a carrier; completed jobs carry a
// completion timestamp one hour in the past.
func jobInStatus(t *testing.T, status job.Status) *job.Job {
	t.Helper()

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

	restored, err := job.RestoreJob(
		kernel.NewUUID(),
		testRequirements(t),
		testMoney(t),
		status,
		carrierID,
		status >= job.Invoiced && status <= job.Archived,
		job.Unknown,
		completedAt,
		1,
	)
	require.NoError(t, err)
	return restored
}

func testCarrier(t *testing.T, name string, regions []string) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), name, regions,
		[]string{"Curtain-side"}, []string{"Road Freight"}, true, nil)
	require.NoError(t, err)
	return c
}
