package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"session-auth/internal/logger"
)

var (
	ErrNoSessionStore  = errors.New("auth: session strategy requires a session store")
	ErrNoUserResolver  = errors.New("auth: strategy requires a user resolver")
	ErrNoTokenVerifier = errors.New("auth: bearer strategy requires a token verifier")
)

// Strategy is the capability set every authentication scheme offers.
// Only CurrentUser differs between schemes; the rest comes from Base.
type Strategy interface {
	// RequireAuth reports whether path is protected given the excluded patterns.
	RequireAuth(path string, excluded []string) bool

	// AuthorizationHeader returns the request's Authorization header, if any.
	AuthorizationHeader(r Request) (string, bool)

	// SessionCookie returns the request's session cookie value, if any.
	SessionCookie(r Request) (string, bool)

	// CurrentUser resolves the user behind r. Every failure, from a missing
	// credential to a resolver error, is reported as (nil, false).
	CurrentUser(ctx context.Context, r Request) (*User, bool)
}

// Base implements the shared half of Strategy.
type Base struct {
	CookieName string
}

func (b Base) RequireAuth(path string, excluded []string) bool {
	return RequiresAuth(path, excluded)
}

func (b Base) AuthorizationHeader(r Request) (string, bool) {
	return AuthorizationHeader(r)
}

func (b Base) SessionCookie(r Request) (string, bool) {
	return SessionCookie(r, b.CookieName)
}

// NullAuth authenticates nobody, so every protected path is denied.
type NullAuth struct {
	Base
}

func NewNullAuth(cookieName string) *NullAuth {
	return &NullAuth{Base: Base{CookieName: cookieName}}
}

func (*NullAuth) CurrentUser(context.Context, Request) (*User, bool) {
	return nil, false
}

// Kind names a strategy selectable at startup.
type Kind string

const (
	KindNone    Kind = "none"
	KindSession Kind = "session"
	KindBearer  Kind = "bearer"
)

// ParseKind maps a configured AUTH_TYPE to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "auth":
		return KindNone, nil
	case "session", "session_auth":
		return KindSession, nil
	case "bearer", "oidc":
		return KindBearer, nil
	default:
		return "", fmt.Errorf("auth: unknown strategy %q", s)
	}
}

// Deps are the collaborators a strategy may need. Strategies take only
// what they use and reject missing pieces at construction.
type Deps struct {
	CookieName    string
	Sessions      SessionStore
	Users         UserResolver
	Tokens        TokenVerifier
	LookupTimeout time.Duration
}

// NewStrategy builds the strategy for kind. It is called once at startup.
func NewStrategy(kind Kind, deps Deps) (Strategy, error) {
	switch kind {
	case KindNone:
		return NewNullAuth(deps.CookieName), nil
	case KindSession:
		s, err := NewSessionAuth(deps.Sessions, deps.Users, deps.CookieName, deps.LookupTimeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindBearer:
		t, err := NewTokenAuth(deps.Tokens, deps.Users, deps.CookieName, deps.LookupTimeout)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("auth: unknown strategy %q", kind)
	}
}

// lookupUser asks users for userID, bounded by timeout when positive.
func lookupUser(ctx context.Context, users UserResolver, userID string, timeout time.Duration) (*User, bool) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u, err := users.Get(ctx, userID)
	if err != nil {
		logger.Warn("user lookup failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false
	}
	if u == nil {
		return nil, false
	}
	return u, true
}
