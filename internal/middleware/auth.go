package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"session-auth/internal/auth"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (*auth.User, bool) {
	u, ok := ctx.Value(userKey).(*auth.User)
	return u, ok && u != nil
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *auth.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

type AuthMiddleware struct {
	Strategy auth.Strategy
	Excluded []string
}

func NewAuthMiddleware(strategy auth.Strategy, excluded []string) *AuthMiddleware {
	return &AuthMiddleware{Strategy: strategy, Excluded: excluded}
}

// RequireAuth lets excluded paths through, answers 401 when the request
// carries neither an Authorization header nor a session cookie, and 403
// when it does but no user resolves from them.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Strategy.RequireAuth(r.URL.Path, a.Excluded) {
			next.ServeHTTP(w, r)
			return
		}

		req := auth.FromHTTP(r)

		_, hasHeader := a.Strategy.AuthorizationHeader(req)
		_, hasCookie := a.Strategy.SessionCookie(req)
		if !hasHeader && !hasCookie {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, ok := a.Strategy.CurrentUser(r.Context(), req)
		if !ok {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
