package queries

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrGetJobByIDQueryIsNotConstructed = errors.New(
	"GetJobByIDQuery must be created via NewGetJobByIDQuery constructor",
)

// GetJobByIDQuery fetches a single posting.
type GetJobByIDQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetJobByIDQuery(jobID kernel.UUID) (GetJobByIDQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobByIDQuery{}, err
	}
	return GetJobByIDQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetJobByIDQueryIsNotConstructed)
}

func (q GetJobByIDQuery) JobID() kernel.UUID {
	return q.jobID
}
