package commands

import (
	"context"

	"jobboard/internal/core/domain/model/job"
)

// CreateJobCommandHandler builds the posting aggregate and stores it.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored posting. Aggregate validation errors are returned
// before a transaction is opened.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	posting, err := job.NewJob(cmd.JobID(), cmd.Details(), cmd.PostedDate())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = inTx(ctx, uow, func() error {
		return uow.JobRepository().Add(ctx, posting)
	}); err != nil {
		return nil, err
	}

	return posting, nil
}
