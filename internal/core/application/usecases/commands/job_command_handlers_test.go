package commands_test

import (
	"errors"
	"testing"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func details(t *testing.T, title string) job.Details {
	t.Helper()
	company, err := job.NewCompany("Acme", "jobs@acme.test", "")
	require.NoError(t, err)
	return job.Details{Title: title, Type: job.FullTime, Company: company, Salary: 3000}
}

func existingJob(t *testing.T, d job.Details) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), d, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return j
}

func TestCreateJobCommandHandler_Handle(t *testing.T) {
	t.Run("stores the posting", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateJobCommand(id, details(t, "Go developer"), time.Now())
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("Add", ctx, mock.MatchedBy(func(j *job.Job) bool {
			return j.ID().IsEqual(id) && j.Status() == job.Open
		})).Return(nil).Once()
		factory, uow := jobTx(repo, nil)

		h := commands.NewCreateJobCommandHandler(factory)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Go developer", created.Title())
		repo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", ctx)
		factory.AssertExpectations(t)
	})

	t.Run("rejects invalid details before opening a transaction", func(t *testing.T) {
		cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), details(t, ""), time.Now())
		require.NoError(t, err)
		factory := new(MockJobUoWFactory)

		h := commands.NewCreateJobCommandHandler(factory)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unconstructed command", func(t *testing.T) {
		h := commands.NewCreateJobCommandHandler(new(MockJobUoWFactory))

		_, err := h.Handle(t.Context(), commands.CreateJobCommand{})

		require.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
	})

	t.Run("propagates repository failure without commit", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), details(t, "Go developer"), time.Now())
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once()
		factory, uow := jobTx(repo, nil)

		h := commands.NewCreateJobCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.EqualError(t, err, "disk full")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertCalled(t, "Rollback", ctx)
	})
}

func TestNewCreateJobCommand(t *testing.T) {
	_, err := commands.NewCreateJobCommand(kernel.UUID{}, job.Details{}, time.Time{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateJobCommandHandler_Handle(t *testing.T) {
	t.Run("updates and saves", func(t *testing.T) {
		ctx := t.Context()
		posting := existingJob(t, details(t, "Old title"))
		cmd, err := commands.NewUpdateJobCommand(posting.ID(), details(t, "New title"))
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("Get", ctx, posting.ID()).Return(posting, nil).Once()
		repo.On("Update", ctx, posting).Return(nil).Once()
		factory, _ := jobTx(repo, nil)

		h := commands.NewUpdateJobCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title())
		repo.AssertExpectations(t)
	})

	t.Run("returns not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateJobCommand(id, details(t, "New title"))
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("job", id.String())).Once()
		factory, _ := jobTx(repo, nil)

		h := commands.NewUpdateJobCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("returns commit failure", func(t *testing.T) {
		ctx := t.Context()
		posting := existingJob(t, details(t, "Old title"))
		cmd, err := commands.NewUpdateJobCommand(posting.ID(), details(t, "New title"))
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("Get", ctx, posting.ID()).Return(posting, nil).Once()
		repo.On("Update", ctx, posting).Return(nil).Once()
		factory, _ := jobTx(repo, errors.New("serialization failure"))

		h := commands.NewUpdateJobCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.EqualError(t, err, "serialization failure")
	})
}

func TestDeleteJobCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(id)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	repo.On("Delete", ctx, id).Return(nil).Once()
	factory, uow := jobTx(repo, nil)

	h := commands.NewDeleteJobCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertCalled(t, "Commit", ctx)

	_, err = commands.NewDeleteJobCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCloseExpiredJobsCommandHandler_Handle(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)

	t.Run("closes every expired posting", func(t *testing.T) {
		ctx := t.Context()
		d := details(t, "Expired")
		d.ApplicationDeadline = &past
		first, second := existingJob(t, d), existingJob(t, d)
		cmd, err := commands.NewCloseExpiredJobsCommand(now)
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("GetAllExpired", ctx, now).Return([]*job.Job{first, second}, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Twice()
		factory, _ := jobTx(repo, nil)

		h := commands.NewCloseExpiredJobsCommandHandler(factory)
		closed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, closed)
		assert.Equal(t, job.Closed, first.Status())
		assert.Equal(t, job.Closed, second.Status())
	})

	t.Run("skips postings that are not expired", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCloseExpiredJobsCommand(now)
		require.NoError(t, err)

		repo := new(MockJobRepository)
		repo.On("GetAllExpired", ctx, now).Return([]*job.Job{existingJob(t, details(t, "No deadline"))}, nil).Once()
		factory, _ := jobTx(repo, nil)

		h := commands.NewCloseExpiredJobsCommandHandler(factory)
		closed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, closed)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("zero time is rejected", func(t *testing.T) {
		_, err := commands.NewCloseExpiredJobsCommand(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
