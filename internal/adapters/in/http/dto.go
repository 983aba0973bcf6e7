package http

import (
	"errors"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type CompanyPayload struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

// JobRequest is the body of POST /api/jobs and PUT /api/jobs/:jobId.
type JobRequest struct {
	Title               string         `json:"title" validate:"required"`
	Type                string         `json:"type" validate:"required"`
	Description         string         `json:"description"`
	Company             CompanyPayload `json:"company"`
	Location            string         `json:"location"`
	Salary              int            `json:"salary" validate:"gte=0"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline"`
}

func (r JobRequest) details() (job.Details, error) {
	jobType, typeErr := job.ParseType(r.Type)
	company, companyErr := job.NewCompany(r.Company.Name, r.Company.ContactEmail, r.Company.ContactPhone)
	if err := errors.Join(typeErr, companyErr); err != nil {
		return job.Details{}, err
	}

	return job.Details{
		Title:               r.Title,
		Type:                jobType,
		Description:         r.Description,
		Company:             company,
		Location:            r.Location,
		Salary:              r.Salary,
		ApplicationDeadline: r.ApplicationDeadline,
	}, nil
}

type JobResponse struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Type                string         `json:"type"`
	Description         string         `json:"description"`
	Company             CompanyPayload `json:"company"`
	Location            string         `json:"location"`
	Salary              int            `json:"salary"`
	Status              string         `json:"status"`
	PostedDate          time.Time      `json:"postedDate"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline,omitempty"`
}

func jobResponseFromView(v queries.JobView) JobResponse {
	return JobResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Type:        v.Type,
		Description: v.Description,
		Company: CompanyPayload{
			Name:         v.Company.Name,
			ContactEmail: v.Company.ContactEmail,
			ContactPhone: v.Company.ContactPhone,
		},
		Location:            v.Location,
		Salary:              v.Salary,
		Status:              v.Status,
		PostedDate:          v.PostedDate,
		ApplicationDeadline: v.ApplicationDeadline,
	}
}

func jobResponseFromAggregate(j *job.Job) JobResponse {
	company := j.Company()
	return JobResponse{
		ID:          j.ID().String(),
		Title:       j.Title(),
		Type:        j.Type().String(),
		Description: j.Description(),
		Company: CompanyPayload{
			Name:         company.Name(),
			ContactEmail: company.ContactEmail(),
			ContactPhone: company.ContactPhone(),
		},
		Location:            j.Location(),
		Salary:              j.Salary(),
		Status:              j.Status().String(),
		PostedDate:          j.PostedDate(),
		ApplicationDeadline: j.ApplicationDeadline(),
	}
}

// SignupRequest is the body of POST /api/users/signup.
type SignupRequest struct {
	Username         string `json:"username" validate:"required,max=64"`
	Password         string `json:"password" validate:"required,max=72"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phoneNumber"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	MembershipStatus string `json:"membershipStatus"`
	Address          string `json:"address"`
}

func (r SignupRequest) profile() (user.Profile, error) {
	p := user.Profile{
		Name:             r.Name,
		PhoneNumber:      r.PhoneNumber,
		Gender:           r.Gender,
		MembershipStatus: r.MembershipStatus,
		Address:          r.Address,
	}
	if r.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, r.DateOfBirth)
		if err != nil {
			return user.Profile{}, errs.NewValueIsInvalidErrorWithCause("dateOfBirth", err)
		}
		p.DateOfBirth = &dob
	}
	return p, nil
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

func authResponse(r commands.AuthResult) AuthResponse {
	return AuthResponse{Username: r.Username, Token: r.Token}
}
