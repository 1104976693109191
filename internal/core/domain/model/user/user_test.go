package user_test

import (
	"testing"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"admin", "courier", "customer"} {
		t.Run(name, func(t *testing.T) {
			role, err := user.ParseRole(name)
			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.ParseRole("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "admin, courier, customer")
	})
}

func TestAllRoles_ReturnsCopy(t *testing.T) {
	roles := user.AllRoles()
	roles[0] = "hacker"
	assert.Equal(t, user.RoleAdmin, user.AllRoles()[0])
}

func TestNewUser(t *testing.T) {
	now := time.Now()

	t.Run("valid user is enabled", func(t *testing.T) {
		u, err := user.NewUser("john_doe", mustEmail(t, "john@example.com"), "hash", user.RoleCustomer, now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "john_doe", u.Username())
		assert.Equal(t, "john@example.com", u.Email().String())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.False(t, u.Disabled())
		assert.Equal(t, now, u.CreatedAt())
	})

	t.Run("collects every violation", func(t *testing.T) {
		u, err := user.NewUser(" ", kernel.Email{}, "", "root", now)

		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser_KeepsDisabledFlag(t *testing.T) {
	u, err := user.RestoreUser("old", mustEmail(t, "old@example.com"), "hash", user.RoleCourier, true, time.Now())

	require.NoError(t, err)
	assert.True(t, u.Disabled())
	assert.Equal(t, user.Principal{Username: "old", Role: user.RoleCourier, Disabled: true}, u.Principal())
}

func TestUser_DisableEnable(t *testing.T) {
	u, err := user.NewUser("courier", mustEmail(t, "courier@logixpress.com"), "hash", user.RoleCourier, time.Now())
	require.NoError(t, err)

	u.Disable()
	require.ErrorIs(t, u.Principal().Validate(), user.ErrUserIsDisabled)

	u.Enable()
	require.NoError(t, u.Principal().Validate())
}

func TestUser_ZeroValue(t *testing.T) {
	var u user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, user.ValidatePassword("123456"))

	err := user.ValidatePassword("12345")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestPrincipal_Validate(t *testing.T) {
	require.NoError(t, user.System.Validate())
	require.ErrorIs(t, user.Principal{Username: "x", Role: "guest"}.Validate(), errs.ErrValueIsInvalid)
}
