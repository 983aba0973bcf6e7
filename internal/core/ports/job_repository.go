// Package ports defines the contracts between the job board core and its
// infrastructure adapters: repositories, the unit of work and the token issuer.
package ports

import (
	"context"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job posting aggregates.
type JobRepository interface {
	// Add persists a new posting. The posting must be valid.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing posting.
	// Returns errs.ObjectNotFoundError if the posting does not exist.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a posting by id.
	// Returns errs.ObjectNotFoundError if the posting does not exist.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// Delete removes a posting by id.
	// Returns errs.ObjectNotFoundError if the posting does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllExpired returns open postings whose application deadline is before now.
	GetAllExpired(ctx context.Context, now time.Time) ([]*job.Job, error)
}
