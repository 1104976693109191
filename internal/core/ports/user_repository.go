package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/user"
)

// UserRepository defines the write-side contract for the user directory.
type UserRepository interface {
	// Add stores a new user.
	// Returns *errs.AlreadyExistsError when the username or the e-mail is taken.
	Add(ctx context.Context, u *user.User) error

	// Update replaces a stored user.
	Update(ctx context.Context, u *user.User) error

	UserReader

	// GetByEmail looks a user up by e-mail, ignoring case.
	// Returns *errs.ObjectNotFoundError when nobody uses the address.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

// UserReader resolves users by username.
type UserReader interface {
	// Get returns a copy of the user.
	// Returns *errs.ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, username string) (*user.User, error)
}
