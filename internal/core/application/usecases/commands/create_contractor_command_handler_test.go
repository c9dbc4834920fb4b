package commands_test

import (
	"context"
	"errors"
	"testing"

	"jobmatch/internal/core/application/usecases/commands"
	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockContractorRepository struct {
	mock.Mock
}

func (m *MockContractorRepository) Add(ctx context.Context, contractor *contractor.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) Update(ctx context.Context, contractor *contractor.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepository) Get(ctx context.Context, id kernel.UUID) (*contractor.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contractor.Contractor), args.Error(1)
}

func (m *MockContractorRepository) GetAllAvailable(ctx context.Context) ([]*contractor.Contractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contractor.Contractor), args.Error(1)
}

type MockContractorUoW struct {
	mock.Mock
}

func (m *MockContractorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractorUoW) ContractorRepository() ports.ContractorRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractorRepository)
}

type MockContractorUoWFactory struct {
	mock.Mock
}

func (m *MockContractorUoWFactory) Create() commands.ContractorUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractorUoW)
}

func validCreateContractorCommand(t *testing.T) commands.CreateContractorCommand {
	t.Helper()
	location, err := kernel.NewGeoLocation(40.7128, -74.0060)
	require.NoError(t, err)
	cmd, err := commands.NewCreateContractorCommand("Ace Plumbing", "A", 4.8, []string{"plumbing"}, location)
	require.NoError(t, err)
	return cmd
}

func TestCreateContractorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContractorCommand(t)

	repo := new(MockContractorRepository)
	uow := new(MockContractorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractorRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*contractor.Contractor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateContractorCommandHandler_Handle_PersistsCommandData(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContractorCommand(t)

	repo := new(MockContractorRepository)
	uow := new(MockContractorUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ContractorRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(c *contractor.Contractor) bool {
		return c.ID().IsEqual(cmd.ContractorID()) &&
			c.Name() == cmd.Name() &&
			c.Grade() == cmd.Grade() &&
			c.IsActive() && c.IsAvailable()
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockContractorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateContractorCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateContractorCommand // not constructed properly

	factory := new(MockContractorUoWFactory)
	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateContractorCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateContractorCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContractorCommand(t)

	uow := new(MockContractorUoW)
	factory := new(MockContractorUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateContractorCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContractorCommand(t)

	repo := new(MockContractorRepository)
	uow := new(MockContractorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractorRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*contractor.Contractor")).
			Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateContractorCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContractorCommand(t)

	repo := new(MockContractorRepository)
	uow := new(MockContractorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractorRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*contractor.Contractor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockContractorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateContractorCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	assert.True(t, uow.AssertExpectations(t))
}
