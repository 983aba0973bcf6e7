package job

import (
	"errors"
	"strings"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")

// Company is the value object describing the employer behind a posting.
// Only the name is mandatory; contact details are free-form.
type Company struct {
	name         string
	contactEmail string
	contactPhone string

	guard guard.ConstructorGuard
}

// NewCompany trims its inputs and requires a non-empty name.
func NewCompany(name, contactEmail, contactPhone string) (Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Company{}, errs.NewValueIsRequiredError("company.name")
	}

	return Company{
		name:         name,
		contactEmail: strings.TrimSpace(contactEmail),
		contactPhone: strings.TrimSpace(contactPhone),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c Company) Validate() error {
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c Company) Name() string {
	return c.name
}

func (c Company) ContactEmail() string {
	return c.contactEmail
}

func (c Company) ContactPhone() string {
	return c.contactPhone
}
