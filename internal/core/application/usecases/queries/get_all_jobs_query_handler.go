package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when there are no postings.
// Ties on posted_date are broken by id so the order is stable.
func (h GetAllJobsQueryHandler) Handle(ctx context.Context, query GetAllJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectJobColumns + `
		ORDER BY posted_date DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobView, 0)
	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
