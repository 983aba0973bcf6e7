package commands

import "context"

type DeleteJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewDeleteJobCommandHandler(uowFactory JobUoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the posting or returns errs.ObjectNotFoundError.
func (h *DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.JobRepository().Delete(ctx, cmd.JobID())
	})
}
