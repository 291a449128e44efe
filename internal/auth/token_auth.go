package auth

import (
	"context"
	"strings"
	"time"

	"session-auth/internal/logger"
)

const bearerPrefix = "bearer "

// TokenVerifier checks a raw bearer token and returns its subject.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (subject string, err error)
}

// TokenAuth authenticates requests by an "Authorization: Bearer" token
// whose subject is a user id.
type TokenAuth struct {
	Base
	verifier TokenVerifier
	users    UserResolver
	timeout  time.Duration
}

func NewTokenAuth(verifier TokenVerifier, users UserResolver, cookieName string, timeout time.Duration) (*TokenAuth, error) {
	if verifier == nil {
		return nil, ErrNoTokenVerifier
	}
	if users == nil {
		return nil, ErrNoUserResolver
	}
	return &TokenAuth{
		Base:     Base{CookieName: cookieName},
		verifier: verifier,
		users:    users,
		timeout:  timeout,
	}, nil
}

func (a *TokenAuth) CurrentUser(ctx context.Context, r Request) (*User, bool) {
	header, ok := a.AuthorizationHeader(r)
	if !ok {
		return nil, false
	}

	raw, ok := bearerToken(header)
	if !ok {
		return nil, false
	}

	subject, err := a.verifier.Verify(ctx, raw)
	if err != nil {
		logger.Warn("bearer token rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, false
	}
	if subject == "" {
		return nil, false
	}

	return lookupUser(ctx, a.users, subject, a.timeout)
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
