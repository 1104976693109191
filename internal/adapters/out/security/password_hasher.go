// Package security implements the credential ports: bcrypt password hashing
// and HS256 JSON Web Tokens.
package security

import (
	"errors"

	"lastmile/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher stores passwords as bcrypt hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. A cost outside the
// range bcrypt accepts falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports errs.ErrInvalidCredentials for a wrong password or a
// malformed hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.Join(errs.ErrInvalidCredentials, err)
	}
	return nil
}
