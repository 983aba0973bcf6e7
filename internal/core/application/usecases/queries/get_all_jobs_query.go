package queries

import (
	"errors"

	"jobboard/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery lists every posting, newest first.
type GetAllJobsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllJobsQuery() GetAllJobsQuery {
	return GetAllJobsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}
