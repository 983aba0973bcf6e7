// Package userrepo persists user accounts in the "users" table.
package userrepo

import (
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row shape of an account. Username uniqueness is enforced by
// the database index, not by a read before insert.
type UserDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         string    `gorm:"size:64;not null;uniqueIndex"`
	PasswordHash     string    `gorm:"size:72;not null"`
	Name             string
	PhoneNumber      string
	Gender           string     `gorm:"size:32"`
	DateOfBirth      *time.Time `gorm:"type:date"`
	MembershipStatus string     `gorm:"size:32"`
	Address          string
	CreatedAt        time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	profile := aggregate.Profile()
	return UserDTO{
		ID:               aggregate.ID().Bytes(),
		Username:         aggregate.Username(),
		PasswordHash:     aggregate.Password().String(),
		Name:             profile.Name,
		PhoneNumber:      profile.PhoneNumber,
		Gender:           profile.Gender,
		DateOfBirth:      profile.DateOfBirth,
		MembershipStatus: profile.MembershipStatus,
		Address:          profile.Address,
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hash, err := user.RestorePasswordHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, hash, user.Profile{
		Name:             dto.Name,
		PhoneNumber:      dto.PhoneNumber,
		Gender:           dto.Gender,
		DateOfBirth:      dto.DateOfBirth,
		MembershipStatus: dto.MembershipStatus,
		Address:          dto.Address,
	}, dto.CreatedAt)
}
