// Package jobrepo persists job posting aggregates in the "jobs" table.
package jobrepo

import (
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the row shape of a job posting. The company value object is
// flattened into company_* columns.
type JobDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title               string     `gorm:"not null"`
	Type                string     `gorm:"size:32;not null"`
	Description         string     `gorm:"type:text"`
	Company             CompanyDTO `gorm:"embedded;embeddedPrefix:company_"`
	Location            string
	Salary              int
	Status              string     `gorm:"size:16;not null;index"`
	PostedDate          time.Time  `gorm:"not null;index"`
	ApplicationDeadline *time.Time `gorm:"index"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

type CompanyDTO struct {
	Name         string `gorm:"not null"`
	ContactEmail string
	ContactPhone string
}

func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Type:        aggregate.Type().String(),
		Description: aggregate.Description(),
		Company: CompanyDTO{
			Name:         aggregate.Company().Name(),
			ContactEmail: aggregate.Company().ContactEmail(),
			ContactPhone: aggregate.Company().ContactPhone(),
		},
		Location:            aggregate.Location(),
		Salary:              aggregate.Salary(),
		Status:              aggregate.Status().String(),
		PostedDate:          aggregate.PostedDate(),
		ApplicationDeadline: aggregate.ApplicationDeadline(),
	}
}

// toDomain rebuilds the aggregate through RestoreJob so stored rows go through
// the same checks as new postings.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	company, err := job.NewCompany(dto.Company.Name, dto.Company.ContactEmail, dto.Company.ContactPhone)
	if err != nil {
		return nil, err
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, job.Details{
		Title:               dto.Title,
		Type:                job.Type(dto.Type),
		Description:         dto.Description,
		Company:             company,
		Location:            dto.Location,
		Salary:              dto.Salary,
		ApplicationDeadline: dto.ApplicationDeadline,
	}, status, dto.PostedDate)
}
