package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"session-auth/internal/auth"

	"github.com/joho/godotenv"
)

// DefaultExcludedPaths are reachable without credentials.
var DefaultExcludedPaths = []string{
	"/api/v1/status/",
	"/api/v1/unauthorized/",
	"/api/v1/forbidden/",
	"/api/v1/auth_session/login/",
	"/api/v1/auth_session/register/",
}

type Config struct {
	AppPort string
	GinMode string

	AuthType          auth.Kind
	SessionCookieName string
	CookieSecure      bool
	ExcludedPaths     []string
	UserLookupTimeout time.Duration

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	UserCacheTTL  time.Duration

	OIDCIssuer   string
	OIDCClientID string
}

// Load reads the configuration from the environment, after loading a
// .env file from the working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	kind, err := auth.ParseKind(getEnv("AUTH_TYPE", string(auth.KindSession)))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppPort: getEnv("APP_PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		AuthType:          kind,
		SessionCookieName: getEnv("SESSION_NAME", auth.DefaultSessionCookieName),
		CookieSecure:      getEnvAsBool("COOKIE_SECURE", true),
		ExcludedPaths:     getEnvAsList("EXCLUDED_PATHS", DefaultExcludedPaths),
		UserLookupTimeout: getEnvAsDuration("USER_LOOKUP_TIMEOUT", 2*time.Second),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		UserCacheTTL:  getEnvAsDuration("USER_CACHE_TTL", 5*time.Minute),

		OIDCIssuer:   os.Getenv("OIDC_ISSUER"),
		OIDCClientID: os.Getenv("OIDC_CLIENT_ID"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.AppPort == "" {
		errs = append(errs, errors.New("APP_PORT is required"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN is required"))
	}
	if c.SessionCookieName == "" {
		errs = append(errs, errors.New("SESSION_NAME must not be empty"))
	}
	if c.AuthType == auth.KindBearer && (c.OIDCIssuer == "" || c.OIDCClientID == "") {
		errs = append(errs, fmt.Errorf("OIDC_ISSUER and OIDC_CLIENT_ID are required for AUTH_TYPE=%s", c.AuthType))
	}

	return errors.Join(errs...)
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated value, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
