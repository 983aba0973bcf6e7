package commands

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to publish a new job posting.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(kernel.NewUUID(), details, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	details    job.Details
	postedDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates the identifier and posting date. Field level
// validation of details happens in the aggregate.
func NewCreateJobCommand(jobID kernel.UUID, details job.Details, postedDate time.Time) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setPostedDate(postedDate),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c CreateJobCommand) PostedDate() time.Time {
	return c.postedDate
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setPostedDate(postedDate time.Time) error {
	if postedDate.IsZero() {
		return errs.NewValueIsRequiredError("postedDate")
	}
	c.postedDate = postedDate
	return nil
}
