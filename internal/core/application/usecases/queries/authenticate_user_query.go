package queries

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery exchanges a username and password for an access token.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	var required []error
	if username == "" {
		required = append(required, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		required = append(required, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(required...); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

func (q AuthenticateUserQuery) Username() string { return q.username }
func (q AuthenticateUserQuery) Password() string { return q.password }
