package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"session-auth/internal/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingResolver struct {
	users map[string]*auth.User
	err   error
	calls int
}

func (r *countingResolver) Get(_ context.Context, id string) (*auth.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func newTestCache(t *testing.T, next auth.UserResolver) (*CachedResolver, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCachedResolver(next, client, time.Minute), mr
}

func TestCachedResolverReadThrough(t *testing.T) {
	next := &countingResolver{users: map[string]*auth.User{
		"u1": {ID: "u1", Email: "a@example.com", PasswordHash: "$2a$10$secret"},
	}}
	cache, mr := newTestCache(t, next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u, err := cache.Get(ctx, "u1")
		if err != nil || u == nil || u.ID != "u1" {
			t.Fatalf("Get = %+v, %v", u, err)
		}
	}
	if next.calls != 1 {
		t.Fatalf("backing resolver called %d times, want 1", next.calls)
	}

	raw, err := mr.Get("user:u1")
	if err != nil {
		t.Fatalf("cache entry missing: %v", err)
	}
	if strings.Contains(raw, "$2a$10$secret") {
		t.Fatalf("password hash cached: %s", raw)
	}
	if ttl := mr.TTL("user:u1"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}
}

func TestCachedResolverMissNotCached(t *testing.T) {
	next := &countingResolver{users: map[string]*auth.User{}}
	cache, mr := newTestCache(t, next)

	u, err := cache.Get(context.Background(), "ghost")
	if err != nil || u != nil {
		t.Fatalf("Get = %+v, %v", u, err)
	}
	if mr.Exists("user:ghost") {
		t.Fatal("miss was cached")
	}
	if u, _ := cache.Get(context.Background(), ""); u != nil || next.calls != 1 {
		t.Fatalf("empty id reached the backing resolver (calls=%d)", next.calls)
	}
}

func TestCachedResolverPropagatesErrors(t *testing.T) {
	next := &countingResolver{err: errors.New("db down")}
	cache, _ := newTestCache(t, next)

	if _, err := cache.Get(context.Background(), "u1"); err == nil {
		t.Fatal("expected backing error")
	}
}

func TestCachedResolverRedisDown(t *testing.T) {
	next := &countingResolver{users: map[string]*auth.User{"u1": {ID: "u1"}}}
	cache, mr := newTestCache(t, next)
	mr.Close()

	u, err := cache.Get(context.Background(), "u1")
	if err != nil || u == nil {
		t.Fatalf("expected fallback to backing resolver, got %+v, %v", u, err)
	}
}

func TestCachedResolverInvalidate(t *testing.T) {
	next := &countingResolver{users: map[string]*auth.User{"u1": {ID: "u1"}}}
	cache, mr := newTestCache(t, next)
	ctx := context.Background()

	if _, err := cache.Get(ctx, "u1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := cache.Invalidate(ctx, "u1"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if mr.Exists("user:u1") {
		t.Fatal("entry survived invalidation")
	}
	if _, err := cache.Get(ctx, "u1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("backing resolver called %d times, want 2", next.calls)
	}
}
