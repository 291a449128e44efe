package app

import (
	"context"
	"net/http"

	"session-auth/internal/auth"
	"session-auth/internal/auth/credentials"
	"session-auth/internal/auth/handler"
	"session-auth/internal/config"
	"session-auth/internal/logger"
	"session-auth/internal/middleware"
	"session-auth/internal/session"
	"session-auth/internal/users"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := users.NewPGStore(infra.DB)

	var resolver auth.UserResolver = userStore
	if infra.Redis != nil {
		resolver = users.NewCachedResolver(userStore, infra.Redis.Client, cfg.UserCacheTTL)
	}

	strategy, err := newStrategy(ctx, cfg, resolver)
	if err != nil {
		_ = infra.Close()
		return nil, nil, err
	}

	logger.Info("auth strategy selected", map[string]any{
		"strategy": string(cfg.AuthType),
	})

	router := newRouter(cfg, strategy, credentials.NewService(userStore))

	return router, infra.Close, nil
}

// newStrategy builds the configured strategy. The session store lives
// here, owned by the process, and is handed to the strategy.
func newStrategy(ctx context.Context, cfg config.Config, resolver auth.UserResolver) (auth.Strategy, error) {
	deps := auth.Deps{
		CookieName:    cfg.SessionCookieName,
		Users:         resolver,
		LookupTimeout: cfg.UserLookupTimeout,
	}

	switch cfg.AuthType {
	case auth.KindSession:
		deps.Sessions = session.NewStore()
	case auth.KindBearer:
		verifier, err := auth.NewOIDCVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCClientID)
		if err != nil {
			return nil, err
		}
		deps.Tokens = verifier
	}

	return auth.NewStrategy(cfg.AuthType, deps)
}

func newRouter(cfg config.Config, strategy auth.Strategy, creds handler.Authenticator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinRequireAuth(
		middleware.NewAuthMiddleware(strategy, cfg.ExcludedPaths),
	))

	v1 := router.Group("/api/v1")

	// ----------------------------
	// Public Routes
	// ----------------------------

	v1.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1.GET("/unauthorized", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	})

	v1.GET("/forbidden", func(c *gin.Context) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	})

	// Session endpoints only exist when the strategy issues sessions.
	if issuer, ok := strategy.(handler.SessionIssuer); ok {
		cookie := session.CookieOptions{
			Name:     cfg.SessionCookieName,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		}
		handler.NewHandler(issuer, creds, cookie).RegisterRoutes(v1)
	}

	// ----------------------------
	// Protected Routes
	// ----------------------------

	v1.GET("/users/me", handler.Me)

	return router
}
