package queries

import (
	"context"
	"errors"

	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// AuthenticateUserQueryHandler checks credentials and issues a bearer token.
// Unknown users and wrong passwords are indistinguishable to the caller.
// Disabled users still get a token; it is rejected when resolved.
type AuthenticateUserQueryHandler struct {
	users  ports.UserReader
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewAuthenticateUserQueryHandler(
	users ports.UserReader,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users, hasher: hasher, issuer: issuer}
}

// Handle returns errs.ErrInvalidCredentials on a failed login.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (ports.AccessToken, error) {
	if err := query.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	u, err := h.users.Get(ctx, query.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.AccessToken{}, errs.ErrInvalidCredentials
		}
		return ports.AccessToken{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), query.Password()); err != nil {
		return ports.AccessToken{}, err
	}

	return h.issuer.Issue(ctx, u.Principal())
}
