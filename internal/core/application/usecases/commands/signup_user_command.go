package commands

import (
	"errors"
	"time"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrSignupUserCommandIsNotConstructed = errors.New(
	"SignupUserCommand must be created via NewSignupUserCommand constructor",
)

// SignupUserCommand registers an account and returns an access token for it.
type SignupUserCommand struct {
	username  string
	password  string
	profile   user.Profile
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewSignupUserCommand(username, password string, profile user.Profile, createdAt time.Time) (SignupUserCommand, error) {
	var problems []error
	if username == "" {
		problems = append(problems, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if createdAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("createdAt"))
	}
	if len(problems) > 0 {
		return SignupUserCommand{}, errors.Join(problems...)
	}

	return SignupUserCommand{
		username:  username,
		password:  password,
		profile:   profile,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SignupUserCommand) Validate() error {
	return c.guard.Validate(ErrSignupUserCommandIsNotConstructed)
}

func (c SignupUserCommand) Username() string {
	return c.username
}

func (c SignupUserCommand) Password() string {
	return c.password
}

func (c SignupUserCommand) Profile() user.Profile {
	return c.profile
}

func (c SignupUserCommand) CreatedAt() time.Time {
	return c.createdAt
}
