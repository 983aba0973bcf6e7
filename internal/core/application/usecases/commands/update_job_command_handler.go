package commands

import (
	"context"

	"jobboard/internal/core/domain/model/job"
)

// UpdateJobCommandHandler loads, edits and saves a posting in one transaction.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated posting, errs.ObjectNotFoundError for unknown ids
// and the aggregate's validation errors otherwise.
func (h *UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *job.Job
	uow := h.uowFactory.Create()
	err := inTx(ctx, uow, func() error {
		repo := uow.JobRepository()

		posting, err := repo.Get(ctx, cmd.JobID())
		if err != nil {
			return err
		}
		if err = posting.Update(cmd.Details()); err != nil {
			return err
		}
		if err = repo.Update(ctx, posting); err != nil {
			return err
		}

		updated = posting
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
