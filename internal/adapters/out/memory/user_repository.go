package memory

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
)

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Add(_ context.Context, u *user.User) error {
	tx, err := r.tx()
	if err != nil {
		return err
	}
	if err = u.Validate(); err != nil {
		return err
	}

	if err = r.uow.store.checkUserIsNew(u, tx.users); err != nil {
		return err
	}

	tx.stageUser(u.Clone())
	return nil
}

func (r *userRepository) Update(_ context.Context, u *user.User) error {
	tx, err := r.tx()
	if err != nil {
		return err
	}
	if err = u.Validate(); err != nil {
		return err
	}

	if _, exists := r.lookup(tx, u.Username()); !exists {
		return errs.NewObjectNotFoundError("User", u.Username())
	}

	tx.stageUser(u.Clone())
	return nil
}

func (r *userRepository) Get(_ context.Context, username string) (*user.User, error) {
	tx, err := r.tx()
	if err != nil {
		return nil, err
	}

	u, exists := r.lookup(tx, username)
	if !exists {
		return nil, errs.NewObjectNotFoundError("User", username)
	}
	return u.Clone(), nil
}

func (r *userRepository) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	tx, err := r.tx()
	if err != nil {
		return nil, err
	}

	for _, u := range tx.users {
		if u.Email().IsEqual(email) {
			return u.Clone(), nil
		}
	}
	for username, u := range r.uow.store.users {
		if _, staged := tx.users[username]; staged {
			continue
		}
		if u.Email().IsEqual(email) {
			return u.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("User", email.String())
}

func (r *userRepository) tx() (*transaction, error) {
	if r.uow.tx == nil {
		return nil, ErrInvalidTransaction
	}
	return r.uow.tx, nil
}

func (r *userRepository) lookup(tx *transaction, username string) (*user.User, bool) {
	if staged, ok := tx.users[username]; ok {
		return staged, true
	}
	u, ok := r.uow.store.users[username]
	return u, ok
}
