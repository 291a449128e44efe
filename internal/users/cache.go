package users

import (
	"context"
	"encoding/json"
	"time"

	"session-auth/internal/auth"
	"session-auth/internal/logger"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// CachedResolver is a read-through redis cache in front of another
// resolver. Misses are not cached. Password hashes never reach redis.
type CachedResolver struct {
	next   auth.UserResolver
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCachedResolver(next auth.UserResolver, client *redis.Client, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedResolver{
		next:   next,
		client: client,
		prefix: "user:",
		ttl:    ttl,
	}
}

func (c *CachedResolver) key(userID string) string {
	return c.prefix + userID
}

func (c *CachedResolver) Get(ctx context.Context, userID string) (*auth.User, error) {
	if userID == "" {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	switch {
	case err == nil:
		var u auth.User
		if jsonErr := json.Unmarshal(data, &u); jsonErr == nil {
			return &u, nil
		}
		logger.Warn("user cache entry unreadable", map[string]any{
			"user_id": userID,
		})
	case err != redis.Nil:
		logger.Warn("user cache read failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	u, err := c.next.Get(ctx, userID)
	if err != nil || u == nil {
		return u, err
	}

	if payload, err := json.Marshal(u); err == nil {
		if err := c.client.Set(ctx, c.key(userID), payload, c.ttl).Err(); err != nil {
			logger.Warn("user cache write failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	return u, nil
}

// Invalidate drops any cached copy of userID.
func (c *CachedResolver) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
