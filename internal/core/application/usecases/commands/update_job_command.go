package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand replaces the editable details of an existing posting.
type UpdateJobCommand struct {
	jobID   kernel.UUID
	details job.Details

	guard guard.ConstructorGuard
}

func NewUpdateJobCommand(jobID kernel.UUID, details job.Details) (UpdateJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return UpdateJobCommand{}, err
	}

	return UpdateJobCommand{
		jobID:   jobID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c UpdateJobCommand) Details() job.Details {
	return c.details
}
