package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenType = "bearer"

var ErrSecretIsRequired = errs.NewValueIsRequiredError("jwt secret")

// claims is the token payload: sub carries the username.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
//
// Example:
//
//	tokens, err := security.NewTokenService([]byte(cfg.JWTSecret), 30*time.Minute, "lastmile")
//	token, err := tokens.Issue(ctx, u.Principal())
//	claims, err := tokens.Verify(ctx, token.Value)
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration, issuer string) (*TokenService, error) {
	if len(secret) == 0 {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, time.Second, "unbounded")
	}

	return &TokenService{
		secret: secret,
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source, for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

func (s *TokenService) Issue(_ context.Context, principal user.Principal) (ports.AccessToken, error) {
	if principal.Username == "" {
		return ports.AccessToken{}, errs.NewValueIsRequiredError("username")
	}
	if err := principal.Role.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: principal.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   principal.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return ports.AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	return ports.AccessToken{Value: signed, Type: TokenType, ExpiresAt: expiresAt}, nil
}

// Verify accepts only tokens signed with HS256 by this service that carry a
// subject and an expiry in the future.
func (s *TokenService) Verify(_ context.Context, token string) (ports.TokenClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		return ports.TokenClaims{}, errors.Join(errs.ErrUnauthenticated, err)
	}
	if parsed.Subject == "" {
		return ports.TokenClaims{}, errors.Join(errs.ErrUnauthenticated, errs.NewValueIsRequiredError("sub"))
	}

	role, err := user.ParseRole(parsed.Role)
	if err != nil {
		return ports.TokenClaims{}, errors.Join(errs.ErrUnauthenticated, err)
	}

	return ports.TokenClaims{
		ID:        parsed.ID,
		Username:  parsed.Subject,
		Role:      role,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}
