package queries_test

import (
	"errors"
	"testing"
	"time"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateUserQuery_RequiresBoth(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestAuthenticateUserQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("admin", "admin123")
	token := ports.AccessToken{Value: "signed", Type: "bearer", ExpiresAt: time.Now().Add(time.Minute)}

	users := new(MockUserReader)
	hasher := new(MockPasswordHasher)
	issuer := new(MockTokenIssuer)
	users.On("Get", ctx, "admin").Return(newUser("admin", user.RoleAdmin, false), nil).Once()
	hasher.On("Compare", "hash-admin", "admin123").Return(nil).Once()
	issuer.On("Issue", ctx, admin).Return(token, nil).Once()

	h := queries.NewAuthenticateUserQueryHandler(users, hasher, issuer)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, token, got)
	users.AssertExpectations(t)
	hasher.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestAuthenticateUserQueryHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("ghost", "whatever")

	users := new(MockUserReader)
	users.On("Get", ctx, "ghost").Return(nil, errs.NewObjectNotFoundError("User", "ghost")).Once()
	issuer := new(MockTokenIssuer)

	h := queries.NewAuthenticateUserQueryHandler(users, new(MockPasswordHasher), issuer)
	_, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthenticateUserQueryHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	query, _ := queries.NewAuthenticateUserQuery("admin", "wrong")

	users := new(MockUserReader)
	hasher := new(MockPasswordHasher)
	users.On("Get", ctx, "admin").Return(newUser("admin", user.RoleAdmin, false), nil).Once()
	hasher.On("Compare", "hash-admin", "wrong").Return(errs.ErrInvalidCredentials).Once()

	h := queries.NewAuthenticateUserQueryHandler(users, hasher, new(MockTokenIssuer))
	_, err := h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestResolvePrincipalQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewResolvePrincipalQuery("token")
	require.NoError(t, err)

	verifier := new(MockTokenVerifier)
	users := new(MockUserReader)
	// The directory role wins over the role claimed by the token.
	verifier.On("Verify", ctx, "token").Return(ports.TokenClaims{Username: "courier", Role: user.RoleAdmin}, nil).Once()
	users.On("Get", ctx, "courier").Return(newUser("courier", user.RoleCourier, false), nil).Once()

	h := queries.NewResolvePrincipalQueryHandler(verifier, users)
	got, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, courier, got.Principal())
	assert.Equal(t, "courier@example.com", got.Email)
}

func TestResolvePrincipalQueryHandler_Handle_Failures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		_, err := queries.NewResolvePrincipalQuery("")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx := t.Context()
		query, _ := queries.NewResolvePrincipalQuery("forged")
		verifier := new(MockTokenVerifier)
		verifier.On("Verify", ctx, "forged").Return(ports.TokenClaims{}, errs.ErrUnauthenticated).Once()
		users := new(MockUserReader)

		h := queries.NewResolvePrincipalQueryHandler(verifier, users)
		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("user removed", func(t *testing.T) {
		ctx := t.Context()
		query, _ := queries.NewResolvePrincipalQuery("token")
		verifier := new(MockTokenVerifier)
		verifier.On("Verify", ctx, "token").Return(ports.TokenClaims{Username: "gone"}, nil).Once()
		users := new(MockUserReader)
		users.On("Get", ctx, "gone").Return(nil, errs.NewObjectNotFoundError("User", "gone")).Once()

		h := queries.NewResolvePrincipalQueryHandler(verifier, users)
		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("disabled user", func(t *testing.T) {
		ctx := t.Context()
		query, _ := queries.NewResolvePrincipalQuery("token")
		verifier := new(MockTokenVerifier)
		verifier.On("Verify", ctx, "token").Return(ports.TokenClaims{Username: "old"}, nil).Once()
		users := new(MockUserReader)
		users.On("Get", ctx, "old").Return(newUser("old", user.RoleCustomer, true), nil).Once()

		h := queries.NewResolvePrincipalQueryHandler(verifier, users)
		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, user.ErrUserIsDisabled)
	})

	t.Run("directory failure", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("boom")
		query, _ := queries.NewResolvePrincipalQuery("token")
		verifier := new(MockTokenVerifier)
		verifier.On("Verify", ctx, "token").Return(ports.TokenClaims{Username: "x"}, nil).Once()
		users := new(MockUserReader)
		users.On("Get", ctx, "x").Return(nil, boom).Once()

		h := queries.NewResolvePrincipalQueryHandler(verifier, users)
		_, err := h.Handle(ctx, query)

		require.ErrorIs(t, err, boom)
	})
}
