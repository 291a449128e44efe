package auth

import (
	"context"
	"time"
)

// SessionStore is the session-id to user-id mapping SessionAuth reads.
type SessionStore interface {
	CreateSession(userID string) (string, bool)
	UserIDForSession(sessionID string) (string, bool)
	DestroySession(sessionID string) bool
}

// SessionAuth authenticates requests by their session cookie.
type SessionAuth struct {
	Base
	store   SessionStore
	users   UserResolver
	timeout time.Duration
}

// NewSessionAuth wires a session strategy. A zero timeout leaves user
// lookups bounded only by the request context.
func NewSessionAuth(store SessionStore, users UserResolver, cookieName string, timeout time.Duration) (*SessionAuth, error) {
	if store == nil {
		return nil, ErrNoSessionStore
	}
	if users == nil {
		return nil, ErrNoUserResolver
	}
	return &SessionAuth{
		Base:    Base{CookieName: cookieName},
		store:   store,
		users:   users,
		timeout: timeout,
	}, nil
}

// CurrentUser follows cookie -> session -> user, stopping at the first gap.
func (a *SessionAuth) CurrentUser(ctx context.Context, r Request) (*User, bool) {
	sessionID, ok := a.SessionCookie(r)
	if !ok || sessionID == "" {
		return nil, false
	}

	userID, ok := a.store.UserIDForSession(sessionID)
	if !ok {
		return nil, false
	}

	return lookupUser(ctx, a.users, userID, a.timeout)
}

// CreateSession opens a session for userID.
func (a *SessionAuth) CreateSession(userID string) (string, bool) {
	return a.store.CreateSession(userID)
}

// DestroySession ends the session named by r's cookie.
func (a *SessionAuth) DestroySession(r Request) bool {
	sessionID, ok := a.SessionCookie(r)
	if !ok {
		return false
	}
	return a.store.DestroySession(sessionID)
}
