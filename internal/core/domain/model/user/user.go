package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// MinPasswordLength is the shortest accepted plain-text password.
const MinPasswordLength = 6

var (
	ErrUserIsDisabled       = errors.New("user is disabled")
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a registered account. Only the password hash is kept.
type User struct {
	username     string
	email        kernel.Email
	passwordHash string
	role         Role
	disabled     bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an enabled account. passwordHash is produced by a
// ports.PasswordHasher; use ValidatePassword on the plain text first.
func NewUser(username string, email kernel.Email, passwordHash string, role Role, now time.Time) (*User, error) {
	u := &User{createdAt: now, isConstructed: true}
	if err := errors.Join(
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds an account from stored state.
func RestoreUser(
	username string,
	email kernel.Email,
	passwordHash string,
	role Role,
	disabled bool,
	createdAt time.Time,
) (*User, error) {
	u, err := NewUser(username, email, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}
	u.disabled = disabled
	return u, nil
}

// ValidatePassword checks the plain-text password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters long", MinPasswordLength))
	}
	return nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) Username() string     { return u.username }
func (u *User) Email() kernel.Email  { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Disabled() bool       { return u.disabled }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Principal returns the identity this user acts as.
func (u *User) Principal() Principal {
	return Principal{Username: u.username, Role: u.role, Disabled: u.disabled}
}

// Disable prevents the user from acting; resolution still succeeds.
func (u *User) Disable() { u.disabled = true }

// Enable reverses Disable.
func (u *User) Enable() { u.disabled = false }

func (u *User) Clone() *User {
	clone := *u
	return &clone
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
