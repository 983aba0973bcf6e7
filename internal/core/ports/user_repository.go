package ports

import (
	"context"

	"jobboard/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account.
	// Returns errs.ObjectAlreadyExistsError when the username is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByUsername looks an account up by its exact username.
	// Returns errs.ObjectNotFoundError when no account matches.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
