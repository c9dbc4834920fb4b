package commands_test

import (
	"context"
	"errors"
	"testing"

	"jobmatch/internal/core/application/usecases/commands"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func (m *MockJobRepository) GetFirstOpen(ctx context.Context) (*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllAssigned(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllAssignedTo(ctx context.Context, contractorID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockJobUoW struct {
	mock.Mock
}

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

type MockJobUoWFactory struct {
	mock.Mock
}

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

func validCreateJobCommand(t *testing.T) commands.CreateJobCommand {
	t.Helper()
	site, err := kernel.NewGeoLocation(40.7128, -74.0060)
	require.NoError(t, err)
	cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), "Fix kitchen sink", 350,
		[]string{"plumbing"}, 0, site)
	require.NoError(t, err)
	return cmd
}

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateJobCommand(t)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(j *job.Job) bool {
			return j.ID().IsEqual(cmd.JobID()) && j.Status() == job.Open
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateJobCommand // not constructed properly

	factory := new(MockJobUoWFactory)
	handler := commands.NewCreateJobCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateJobCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateJobCommand(t)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*job.Job")).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateJobCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
