// Package queries contains the read side of the job board. Handlers run raw
// SQL through gorm and return flat read models instead of aggregates.
package queries

import (
	"database/sql"
	"time"

	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobView is the read model of a job posting.
type JobView struct {
	ID                  kernel.UUID
	Title               string
	Type                string
	Description         string
	Company             CompanyView
	Location            string
	Salary              int
	Status              string
	PostedDate          time.Time
	ApplicationDeadline *time.Time
}

type CompanyView struct {
	Name         string
	ContactEmail string
	ContactPhone string
}

const selectJobColumns = `
	SELECT
		id,
		title,
		type,
		description,
		company_name,
		company_contact_email,
		company_contact_phone,
		location,
		salary,
		status,
		posted_date,
		application_deadline
	FROM jobs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobView(row rowScanner) (JobView, error) {
	var (
		view        JobView
		id          uuid.UUID
		description sql.NullString
		email       sql.NullString
		phone       sql.NullString
		location    sql.NullString
		salary      sql.NullInt64
		deadline    sql.NullTime
	)

	err := row.Scan(
		&id,
		&view.Title,
		&view.Type,
		&description,
		&view.Company.Name,
		&email,
		&phone,
		&location,
		&salary,
		&view.Status,
		&view.PostedDate,
		&deadline,
	)
	if err != nil {
		return JobView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return JobView{}, err
	}

	view.Description = description.String
	view.Company.ContactEmail = email.String
	view.Company.ContactPhone = phone.String
	view.Location = location.String
	view.Salary = int(salary.Int64)
	view.PostedDate = view.PostedDate.UTC()
	if deadline.Valid {
		d := deadline.Time.UTC()
		view.ApplicationDeadline = &d
	}

	return view, nil
}
