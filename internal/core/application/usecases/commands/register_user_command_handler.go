package commands

import (
	"context"
	"errors"
	"time"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// RegisterUserCommandHandler adds accounts to the user directory.
//
// Checks run in this order: username uniqueness, e-mail uniqueness, password
// policy. New users are enabled.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	now        func() time.Time
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		now:        time.Now,
	}
}

// Handle returns the registered user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err := repo.Get(ctx, cmd.Username())
	if err = ensureAbsent("username", err); err != nil {
		return nil, err
	}
	_, err = repo.GetByEmail(ctx, cmd.Email())
	if err = ensureAbsent("email", err); err != nil {
		return nil, err
	}

	if err = user.ValidatePassword(cmd.Password()); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.Username(), cmd.Email(), hash, cmd.Role(), h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

// ensureAbsent turns the error of a lookup by field into
// *errs.AlreadyExistsError when the lookup succeeded. Failures other than
// not-found are passed through.
func ensureAbsent(field string, err error) error {
	switch {
	case err == nil:
		return errs.NewAlreadyExistsError("User", field)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
