package queries

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// ResolvePrincipalQueryHandler verifies bearer tokens against the user directory.
//
// The role is taken from the directory, not from the token, so a role change
// applies to tokens already issued.
type ResolvePrincipalQueryHandler struct {
	verifier ports.TokenVerifier
	users    ports.UserReader
}

func NewResolvePrincipalQueryHandler(verifier ports.TokenVerifier, users ports.UserReader) ResolvePrincipalQueryHandler {
	return ResolvePrincipalQueryHandler{verifier: verifier, users: users}
}

// Handle returns errs.ErrUnauthenticated for a bad token or an unknown user,
// and user.ErrUserIsDisabled for a disabled one.
func (h ResolvePrincipalQueryHandler) Handle(
	ctx context.Context,
	query ResolvePrincipalQuery,
) (ResolvePrincipalResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolvePrincipalResponse{}, err
	}

	claims, err := h.verifier.Verify(ctx, query.Token())
	if err != nil {
		return ResolvePrincipalResponse{}, err
	}

	u, err := h.users.Get(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ResolvePrincipalResponse{}, errs.ErrUnauthenticated
		}
		return ResolvePrincipalResponse{}, err
	}

	if u.Disabled() {
		return ResolvePrincipalResponse{}, user.ErrUserIsDisabled
	}

	return ResolvePrincipalResponse{
		Username: u.Username(),
		Email:    u.Email().String(),
		Role:     u.Role(),
		Disabled: u.Disabled(),
	}, nil
}
