package http_test

import (
	"context"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"

	"github.com/stretchr/testify/mock"
)

type MockJobLister struct{ mock.Mock }

func (m *MockJobLister) Handle(ctx context.Context, q queries.GetAllJobsQuery) ([]queries.JobView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.JobView)
	return views, args.Error(1)
}

type MockJobGetter struct{ mock.Mock }

func (m *MockJobGetter) Handle(ctx context.Context, q queries.GetJobByIDQuery) (queries.JobView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.JobView), args.Error(1)
}

type MockJobCreator struct{ mock.Mock }

func (m *MockJobCreator) Handle(ctx context.Context, cmd commands.CreateJobCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	j, _ := args.Get(0).(*job.Job)
	return j, args.Error(1)
}

type MockJobUpdater struct{ mock.Mock }

func (m *MockJobUpdater) Handle(ctx context.Context, cmd commands.UpdateJobCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	j, _ := args.Get(0).(*job.Job)
	return j, args.Error(1)
}

type MockJobDeleter struct{ mock.Mock }

func (m *MockJobDeleter) Handle(ctx context.Context, cmd commands.DeleteJobCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUserSignup struct{ mock.Mock }

func (m *MockUserSignup) Handle(ctx context.Context, cmd commands.SignupUserCommand) (commands.AuthResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AuthResult), args.Error(1)
}

type MockUserLogin struct{ mock.Mock }

func (m *MockUserLogin) Handle(ctx context.Context, cmd commands.LoginUserCommand) (commands.AuthResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AuthResult), args.Error(1)
}
