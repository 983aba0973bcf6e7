package commands

import (
	"context"
	"fmt"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
)

// AuthResult is what signup and login hand back to the transport layer.
type AuthResult struct {
	UserID   kernel.UUID
	Username string
	Token    string
}

// SignupUserCommandHandler hashes the password, stores the account and issues
// a token for it.
type SignupUserCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenIssuer
	bcryptCost int
}

// NewSignupUserCommandHandler creates the handler. bcryptCost 0 selects the
// bcrypt default.
func NewSignupUserCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenIssuer, bcryptCost int) SignupUserCommandHandler {
	return SignupUserCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Handle returns errs.ObjectAlreadyExistsError when the username is taken.
func (h *SignupUserCommandHandler) Handle(ctx context.Context, cmd SignupUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := user.HashPassword(cmd.Password(), h.bcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	account, err := user.NewUser(kernel.NewUUID(), cmd.Username(), hash, cmd.Profile(), cmd.CreatedAt())
	if err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = inTx(ctx, uow, func() error {
		return uow.UserRepository().Add(ctx, account)
	}); err != nil {
		return AuthResult{}, err
	}

	token, err := h.tokens.Issue(account.ID())
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return AuthResult{UserID: account.ID(), Username: account.Username(), Token: token}, nil
}
