package commands

import (
	"context"
	"fmt"
)

// CloseExpiredJobsCommandHandler closes expired postings in a single transaction.
type CloseExpiredJobsCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewCloseExpiredJobsCommandHandler(uowFactory JobUoWFactory) CloseExpiredJobsCommandHandler {
	return CloseExpiredJobsCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many postings were closed. Either all of them are closed
// or none is.
func (h *CloseExpiredJobsCommandHandler) Handle(ctx context.Context, cmd CloseExpiredJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	closed := 0
	uow := h.uowFactory.Create()
	err := inTx(ctx, uow, func() error {
		repo := uow.JobRepository()

		expired, err := repo.GetAllExpired(ctx, cmd.Now())
		if err != nil {
			return err
		}

		for _, posting := range expired {
			if !posting.IsExpired(cmd.Now()) {
				continue
			}
			if err = posting.Close(); err != nil {
				return fmt.Errorf("close job %s: %w", posting.ID(), err)
			}
			if err = repo.Update(ctx, posting); err != nil {
				return fmt.Errorf("save job %s: %w", posting.ID(), err)
			}
			closed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return closed, nil
}
