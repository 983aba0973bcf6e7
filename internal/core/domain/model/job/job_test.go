package job_test

import (
	"testing"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) job.Details {
	t.Helper()
	company, err := job.NewCompany("Acme", "jobs@acme.test", "555-0100")
	require.NoError(t, err)

	return job.Details{
		Title:       "Backend developer",
		Type:        job.FullTime,
		Description: "Build APIs",
		Company:     company,
		Location:    "Helsinki",
		Salary:      4200,
	}
}

func TestNewJob(t *testing.T) {
	posted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates an open posting", func(t *testing.T) {
		id := kernel.NewUUID()

		j, err := job.NewJob(id, validDetails(t), posted)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.True(t, j.ID().IsEqual(id))
		assert.Equal(t, "Backend developer", j.Title())
		assert.Equal(t, job.FullTime, j.Type())
		assert.Equal(t, "Acme", j.Company().Name())
		assert.Equal(t, 4200, j.Salary())
		assert.Equal(t, job.Open, j.Status())
		assert.Equal(t, posted, j.PostedDate())
		assert.Nil(t, j.ApplicationDeadline())
	})

	t.Run("trims title and location", func(t *testing.T) {
		d := validDetails(t)
		d.Title = "  Go developer "
		d.Location = " Remote "

		j, err := job.NewJob(kernel.NewUUID(), d, posted)

		require.NoError(t, err)
		assert.Equal(t, "Go developer", j.Title())
		assert.Equal(t, "Remote", j.Location())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		d := job.Details{Title: " ", Type: "Gig", Salary: -1}

		j, err := job.NewJob(kernel.NewUUID(), d, posted)

		require.Error(t, err)
		assert.Nil(t, j)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "company")
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := job.NewJob(kernel.UUID{}, validDetails(t), posted)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreJob(t *testing.T) {
	posted := time.Now().Add(-48 * time.Hour)

	t.Run("keeps persisted status", func(t *testing.T) {
		j, err := job.RestoreJob(kernel.NewUUID(), validDetails(t), job.Closed, posted)

		require.NoError(t, err)
		assert.Equal(t, job.Closed, j.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := job.RestoreJob(kernel.NewUUID(), validDetails(t), job.Unknown, posted)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJob_Validate(t *testing.T) {
	var zero job.Job
	var nilJob *job.Job

	require.ErrorIs(t, zero.Validate(), job.ErrJobIsNotConstructed)
	require.ErrorIs(t, nilJob.Validate(), job.ErrJobIsNotConstructed)
}

func TestJob_Update(t *testing.T) {
	t.Run("replaces details of an open posting", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), validDetails(t), time.Now())
		require.NoError(t, err)

		d := validDetails(t)
		d.Title = "Staff engineer"
		d.Type = job.Remote
		d.Salary = 9000

		require.NoError(t, j.Update(d))
		assert.Equal(t, "Staff engineer", j.Title())
		assert.Equal(t, job.Remote, j.Type())
		assert.Equal(t, 9000, j.Salary())
	})

	t.Run("leaves posting untouched on invalid details", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), validDetails(t), time.Now())
		require.NoError(t, err)

		d := validDetails(t)
		d.Title = ""

		require.Error(t, j.Update(d))
		assert.Equal(t, "Backend developer", j.Title())
	})

	t.Run("refuses closed postings", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), validDetails(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, j.Close())

		err = j.Update(validDetails(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJob_CloseAndExpiry(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		deadline *time.Time
		closed   bool
		expired  bool
	}{
		{name: "no deadline", deadline: nil, expired: false},
		{name: "deadline ahead", deadline: &future, expired: false},
		{name: "deadline passed", deadline: &past, expired: true},
		{name: "deadline passed but closed", deadline: &past, closed: true, expired: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails(t)
			d.ApplicationDeadline = tt.deadline
			j, err := job.NewJob(kernel.NewUUID(), d, now.Add(-24*time.Hour))
			require.NoError(t, err)
			if tt.closed {
				require.NoError(t, j.Close())
			}

			assert.Equal(t, tt.expired, j.IsExpired(now))
		})
	}

	t.Run("closing twice fails", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), validDetails(t), now)
		require.NoError(t, err)

		require.NoError(t, j.Close())
		require.ErrorIs(t, j.Close(), errs.ErrValueIsInvalid)
		assert.Equal(t, job.Closed, j.Status())
	})
}
