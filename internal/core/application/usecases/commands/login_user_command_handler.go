package commands

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenIssuer
}

func NewLoginUserCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenIssuer) LoginUserCommandHandler {
	return LoginUserCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

// Handle returns ErrInvalidCredentials for unknown users and wrong passwords.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	var account *user.User
	uow := h.uowFactory.Create()
	err := inTx(ctx, uow, func() error {
		found, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
		if err != nil {
			return err
		}
		account = found
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if !account.Authenticate(cmd.Password()) {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(account.ID())
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return AuthResult{UserID: account.ID(), Username: account.Username(), Token: token}, nil
}
