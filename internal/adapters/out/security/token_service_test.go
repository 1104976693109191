package security_test

import (
	"testing"
	"time"

	"lastmile/internal/adapters/out/security"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func newTokens(t *testing.T, issuer string) *security.TokenService {
	t.Helper()
	tokens, err := security.NewTokenService(secret, 30*time.Minute, issuer)
	require.NoError(t, err)
	return tokens
}

func TestNewTokenService(t *testing.T) {
	_, err := security.NewTokenService(nil, time.Minute, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = security.NewTokenService(secret, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	tokens := newTokens(t, "lastmile").WithClock(func() time.Time { return now })

	token, err := tokens.Issue(ctx, user.Principal{Username: "courier", Role: user.RoleCourier})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.Type)
	assert.Equal(t, now.Add(30*time.Minute), token.ExpiresAt)

	claims, err := tokens.Verify(ctx, token.Value)
	require.NoError(t, err)
	assert.Equal(t, "courier", claims.Username)
	assert.Equal(t, user.RoleCourier, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, token.ExpiresAt, claims.ExpiresAt.UTC())

	again, err := tokens.Issue(ctx, user.Principal{Username: "courier", Role: user.RoleCourier})
	require.NoError(t, err)
	assert.NotEqual(t, token.Value, again.Value, "every token carries its own id")
}

func TestTokenService_Issue_RejectsIncompletePrincipal(t *testing.T) {
	tokens := newTokens(t, "")

	_, err := tokens.Issue(t.Context(), user.Principal{Role: user.RoleAdmin})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = tokens.Issue(t.Context(), user.Principal{Username: "ghost", Role: "root"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	tokens := newTokens(t, "lastmile").WithClock(func() time.Time { return now })
	valid, err := tokens.Issue(ctx, user.Principal{Username: "admin", Role: user.RoleAdmin})
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		signed, signErr := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, signErr)
		return signed
	}
	future := now.Add(time.Hour).Unix()

	tests := []struct {
		name     string
		token    string
		verifier *security.TokenService
	}{
		{"garbage", "not-a-token", tokens},
		{"empty", "", tokens},
		{"expired", valid.Value, tokens.WithClock(func() time.Time { return now.Add(31 * time.Minute) })},
		{"other secret", sign(jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "admin", "role": "admin", "exp": future, "iss": "lastmile"}), tokens},
		{"unsigned", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "admin", "role": "admin", "exp": future, "iss": "lastmile"}), tokens},
		{"no expiry", sign(jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "admin", "role": "admin", "iss": "lastmile"}), tokens},
		{"no subject", sign(jwt.SigningMethodHS256, secret, jwt.MapClaims{"role": "admin", "exp": future, "iss": "lastmile"}), tokens},
		{"unknown role", sign(jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "admin", "role": "root", "exp": future, "iss": "lastmile"}), tokens},
		{"other issuer", sign(jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "admin", "role": "admin", "exp": future, "iss": "elsewhere"}), tokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(ctx, tt.token)
			require.ErrorIs(t, err, errs.ErrUnauthenticated)
		})
	}
}
