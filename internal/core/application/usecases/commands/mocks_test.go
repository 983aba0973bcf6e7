package commands_test

import (
	"context"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepository) GetAllExpired(ctx context.Context, now time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
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

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// jobTx wires a factory → uow → repo chain expecting one full transaction.
func jobTx(repo *MockJobRepository, commitErr error) (*MockJobUoWFactory, *MockJobUoW) {
	uow := new(MockJobUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("JobRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(commitErr).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func userTx(repo *MockUserRepository) (*MockUserUoWFactory, *MockUserUoW) {
	uow := new(MockUserUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}
