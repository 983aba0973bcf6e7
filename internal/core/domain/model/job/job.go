package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
)

var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// MaxSalary bounds the salary field to keep obviously broken input out of storage.
const MaxSalary = 100_000_000

// Details groups the editable attributes of a posting. It is the payload of
// both NewJob and Update, so creation and replacement share one validation path.
type Details struct {
	Title               string
	Type                Type
	Description         string
	Company             Company
	Location            string
	Salary              int
	ApplicationDeadline *time.Time
}

// Job is the aggregate root for a job posting.
//
// Invariants:
//   - id is a valid UUID
//   - title is non-empty, type is one of Types()
//   - company was built through NewCompany
//   - 0 <= salary <= MaxSalary
//   - a closed posting is never edited or reopened
type Job struct {
	id         kernel.UUID
	details    Details
	status     Status
	postedDate time.Time

	isConstructed bool
}

// NewJob creates an open posting dated postedDate.
//
// Example:
//
//	company, _ := job.NewCompany("Acme", "jobs@acme.test", "")
//	j, err := job.NewJob(kernel.NewUUID(), job.Details{
//	    Title:   "Backend developer",
//	    Type:    job.FullTime,
//	    Company: company,
//	    Salary:  4200,
//	}, time.Now())
func NewJob(id kernel.UUID, details Details, postedDate time.Time) (*Job, error) {
	j := &Job{
		status:        Open,
		postedDate:    postedDate.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setDetails(details),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob rebuilds a persisted posting, status included.
func RestoreJob(id kernel.UUID, details Details, status Status, postedDate time.Time) (*Job, error) {
	j := &Job{
		postedDate:    postedDate.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	j.status = status

	return j, nil
}

func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) Title() string {
	return j.details.Title
}

func (j *Job) Type() Type {
	return j.details.Type
}

func (j *Job) Description() string {
	return j.details.Description
}

func (j *Job) Company() Company {
	return j.details.Company
}

func (j *Job) Location() string {
	return j.details.Location
}

func (j *Job) Salary() int {
	return j.details.Salary
}

// ApplicationDeadline returns nil for postings without a deadline.
func (j *Job) ApplicationDeadline() *time.Time {
	return j.details.ApplicationDeadline
}

func (j *Job) Status() Status {
	return j.status
}

func (j *Job) PostedDate() time.Time {
	return j.postedDate
}

// Update replaces every editable attribute. Closed postings are read-only.
func (j *Job) Update(details Details) error {
	if j.status == Closed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("job %s is closed", j.id))
	}
	return j.setDetails(details)
}

// Close moves the posting to Closed.
func (j *Job) Close() error {
	next, err := j.status.Close()
	if err != nil {
		return err
	}
	j.status = next
	return nil
}

// IsExpired reports whether an open posting's deadline lies before now.
func (j *Job) IsExpired(now time.Time) bool {
	deadline := j.details.ApplicationDeadline
	return j.status == Open && deadline != nil && deadline.Before(now)
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Location = strings.TrimSpace(d.Location)

	var problems []error
	if d.Title == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if _, err := ParseType(string(d.Type)); err != nil {
		problems = append(problems, err)
	}
	if err := d.Company.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("company", err))
	}
	if d.Salary < 0 || d.Salary > MaxSalary {
		problems = append(problems, errs.NewValueIsOutOfRangeError("salary", d.Salary, 0, MaxSalary))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	if d.ApplicationDeadline != nil {
		deadline := d.ApplicationDeadline.UTC()
		d.ApplicationDeadline = &deadline
	}
	j.details = d
	return nil
}
