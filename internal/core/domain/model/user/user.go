package user

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// MaxUsernameLength matches the column size used by the users table.
const MaxUsernameLength = 64

// Profile holds the optional personal details collected at signup.
type Profile struct {
	Name             string
	PhoneNumber      string
	Gender           string
	DateOfBirth      *time.Time
	MembershipStatus string
	Address          string
}

// User is the aggregate root for an account registered under /api/users.
type User struct {
	id        kernel.UUID
	username  string
	password  PasswordHash
	profile   Profile
	createdAt time.Time

	isConstructed bool
}

// NewUser registers a new account. The username is trimmed and must not
// contain whitespace.
func NewUser(id kernel.UUID, username string, password PasswordHash, profile Profile, createdAt time.Time) (*User, error) {
	u := &User{
		profile:       normalizeProfile(profile),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id kernel.UUID, username string, password PasswordHash, profile Profile, createdAt time.Time) (*User, error) {
	return NewUser(id, username, password, profile, createdAt)
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Password() PasswordHash {
	return u.password
}

func (u *User) Profile() Profile {
	return u.profile
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Authenticate reports whether plain is this user's password.
func (u *User) Authenticate(plain string) bool {
	return u.password.Matches(plain)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return errs.NewValueIsRequiredError("username")
	case len(username) > MaxUsernameLength:
		return errs.NewValueIsOutOfRangeError("username length", len(username), 1, MaxUsernameLength)
	case strings.IndexFunc(username, unicode.IsSpace) >= 0:
		return errs.NewValueIsInvalidError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPassword(password PasswordHash) error {
	if err := password.Validate(); err != nil {
		return err
	}
	u.password = password
	return nil
}

func normalizeProfile(p Profile) Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Gender = strings.TrimSpace(p.Gender)
	p.MembershipStatus = strings.TrimSpace(p.MembershipStatus)
	p.Address = strings.TrimSpace(p.Address)
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.UTC()
		p.DateOfBirth = &dob
	}
	return p
}
