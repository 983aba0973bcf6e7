// Package jwtauth signs and verifies the HS256 access tokens handed out by
// signup and login.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"jobboard/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidIssuerParams = errors.New("jwt issuer requires a secret, an issuer and a positive ttl")

// Issuer implements ports.TokenIssuer. The subject claim carries the user id.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret, issuer string, ttl time.Duration) (*Issuer, error) {
	if secret == "" || issuer == "" || ttl <= 0 {
		return nil, ErrInvalidIssuerParams
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (i *Issuer) Issue(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Issuer:    i.issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the subject.
func (i *Issuer) Verify(token string) (kernel.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid token: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid token: %w", err)
	}

	return kernel.UUIDFromString(subject)
}
