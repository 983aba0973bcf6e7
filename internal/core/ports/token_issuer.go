package ports

import "jobboard/internal/core/domain/model/kernel"

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (string, error)
}
