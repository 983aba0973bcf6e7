package user

import (
	"errors"
	"fmt"

	"jobboard/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordHashIsNotConstructed = errors.New("PasswordHash must be created via HashPassword or RestorePasswordHash")

// PasswordHash is a bcrypt digest. The plain password never leaves HashPassword.
type PasswordHash struct {
	hash []byte
}

// HashPassword hashes plain with the given bcrypt cost. A cost of 0 selects
// bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (PasswordHash, error) {
	if plain == "" {
		return PasswordHash{}, errs.NewValueIsRequiredError("password")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		return PasswordHash{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return PasswordHash{hash: hash}, nil
}

// RestorePasswordHash wraps a digest read from storage.
func RestorePasswordHash(hash string) (PasswordHash, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return PasswordHash{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return PasswordHash{hash: []byte(hash)}, nil
}

func (p PasswordHash) Validate() error {
	if len(p.hash) == 0 {
		return ErrPasswordHashIsNotConstructed
	}
	return nil
}

// Matches reports whether plain hashes to this digest.
func (p PasswordHash) Matches(plain string) bool {
	if len(p.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(plain)) == nil
}

func (p PasswordHash) String() string {
	return string(p.hash)
}
