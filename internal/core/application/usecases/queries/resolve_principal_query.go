package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrResolvePrincipalQueryIsNotConstructed = errors.New(
	"ResolvePrincipalQuery must be created via NewResolvePrincipalQuery constructor",
)

// ResolvePrincipalQuery turns a bearer token into the identity of the caller.
type ResolvePrincipalQuery struct {
	token string
	guard guard.ConstructorGuard
}

// NewResolvePrincipalQuery returns errs.ErrUnauthenticated for an empty token.
func NewResolvePrincipalQuery(token string) (ResolvePrincipalQuery, error) {
	if token == "" {
		return ResolvePrincipalQuery{}, errs.ErrUnauthenticated
	}
	return ResolvePrincipalQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolvePrincipalQuery) Validate() error {
	return q.guard.Validate(ErrResolvePrincipalQueryIsNotConstructed)
}

func (q ResolvePrincipalQuery) Token() string { return q.token }

// ResolvePrincipalResponse describes the caller.
type ResolvePrincipalResponse struct {
	Username string
	Email    string
	Role     user.Role
	Disabled bool
}

func (r ResolvePrincipalResponse) Principal() user.Principal {
	return user.Principal{Username: r.Username, Role: r.Role, Disabled: r.Disabled}
}
