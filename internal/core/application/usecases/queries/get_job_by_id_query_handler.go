package queries

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetJobByIDQueryHandler struct {
	db *gorm.DB
}

func NewGetJobByIDQueryHandler(db *gorm.DB) GetJobByIDQueryHandler {
	return GetJobByIDQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no posting has the id.
func (h GetJobByIDQueryHandler) Handle(ctx context.Context, query GetJobByIDQuery) (JobView, error) {
	if err := query.Validate(); err != nil {
		return JobView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectJobColumns+`
		WHERE id = ?
	`, query.JobID().Bytes()).Row()

	view, err := scanJobView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobView{}, errs.NewObjectNotFoundError("job", query.JobID().String())
		}
		return JobView{}, err
	}

	return view, nil
}
