package commands

import (
	"errors"
	"strings"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand exchanges a username and password for an access token.
type LoginUserCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(username, password string) (LoginUserCommand, error) {
	username = strings.TrimSpace(username)

	var problems []error
	if username == "" {
		problems = append(problems, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if len(problems) > 0 {
		return LoginUserCommand{}, errors.Join(problems...)
	}

	return LoginUserCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Username() string {
	return c.username
}

func (c LoginUserCommand) Password() string {
	return c.password
}
