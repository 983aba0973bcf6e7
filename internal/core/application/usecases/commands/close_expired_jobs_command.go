package commands

import (
	"errors"
	"time"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCloseExpiredJobsCommandIsNotConstructed = errors.New(
	"CloseExpiredJobsCommand must be created via NewCloseExpiredJobsCommand constructor",
)

// CloseExpiredJobsCommand closes every open posting whose application
// deadline lies before Now. It is issued by the scheduled expiry task.
type CloseExpiredJobsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewCloseExpiredJobsCommand(now time.Time) (CloseExpiredJobsCommand, error) {
	if now.IsZero() {
		return CloseExpiredJobsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return CloseExpiredJobsCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c CloseExpiredJobsCommand) Validate() error {
	return c.guard.Validate(ErrCloseExpiredJobsCommandIsNotConstructed)
}

func (c CloseExpiredJobsCommand) Now() time.Time {
	return c.now
}
