package commands

import (
	"errors"
	"strings"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs a new user up. An empty role registers a customer.
//
// The password policy is checked by the handler, after uniqueness, so a taken
// username is reported before a weak password.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	email    kernel.Email
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, email, password, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setUsername(username),
		cmd.setEmail(email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string    { return c.username }
func (c RegisterUserCommand) Email() kernel.Email { return c.email }
func (c RegisterUserCommand) Password() string    { return c.password }
func (c RegisterUserCommand) Role() user.Role     { return c.role }

func (c *RegisterUserCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(raw string) error {
	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setRole(raw string) error {
	if raw == "" {
		c.role = user.RoleCustomer
		return nil
	}
	role, err := user.ParseRole(raw)
	if err != nil {
		return err
	}
	c.role = role
	return nil
}
