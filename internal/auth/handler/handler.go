package handler

import (
	"context"
	"net/http"

	"session-auth/internal/auth"
	"session-auth/internal/logger"
	"session-auth/internal/middleware"
	"session-auth/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionIssuer opens and closes sessions. SessionAuth satisfies it.
type SessionIssuer interface {
	CreateSession(userID string) (string, bool)
	DestroySession(r auth.Request) bool
}

// Authenticator checks credentials and registers users.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
	Register(ctx context.Context, email, password, firstName, lastName string) (*auth.User, error)
}

type Handler struct {
	sessions    SessionIssuer
	credentials Authenticator
	cookie      session.CookieOptions
}

func NewHandler(
	sessions SessionIssuer,
	credentials Authenticator,
	cookie session.CookieOptions,
) *Handler {
	return &Handler{
		sessions:    sessions,
		credentials: credentials,
		cookie:      cookie,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/auth_session/login", h.Login)
	r.POST("/auth_session/register", h.Register)
	r.DELETE("/auth_session/logout", h.Logout)
}

// Me returns the user attached by the auth middleware.
func Me(c *gin.Context) {
	u, ok := middleware.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Logout(c *gin.Context) {
	if !h.sessions.DestroySession(auth.FromHTTP(c.Request)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if u, ok := middleware.UserFromContext(c.Request.Context()); ok {
		logger.Info("session destroyed", map[string]any{
			"user_id": u.ID,
			"ip":      c.ClientIP(),
		})
	}

	session.ClearCookie(c.Writer, h.cookie)
	c.JSON(http.StatusOK, gin.H{})
}
