package ports

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/user"
)

// PasswordHasher derives and checks password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns errs.ErrInvalidCredentials when password does not match.
	Compare(hash, password string) error
}

// AccessToken is a signed bearer credential.
type AccessToken struct {
	Value     string
	Type      string
	ExpiresAt time.Time
}

// TokenClaims is what a verified token asserts.
type TokenClaims struct {
	ID        string
	Username  string
	Role      user.Role
	ExpiresAt time.Time
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, principal user.Principal) (AccessToken, error)
}

// TokenVerifier checks a bearer credential.
type TokenVerifier interface {
	// Verify returns errs.ErrUnauthenticated for malformed, forged or expired tokens.
	Verify(ctx context.Context, token string) (TokenClaims, error)
}
