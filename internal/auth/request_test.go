package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthorizationHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	r.Header.Set("Authorization", "Bearer token")

	got, ok := AuthorizationHeader(FromHTTP(r))
	if !ok || got != "Bearer token" {
		t.Fatalf("AuthorizationHeader = %q, %v", got, ok)
	}

	r.Header.Del("Authorization")
	if _, ok := AuthorizationHeader(FromHTTP(r)); ok {
		t.Fatal("expected header to be absent")
	}

	if _, ok := AuthorizationHeader(nil); ok {
		t.Fatal("expected nil request to yield absent header")
	}
	if _, ok := AuthorizationHeader(FromHTTP(nil)); ok {
		t.Fatal("expected wrapped nil request to yield absent header")
	}
}

func TestSessionCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultSessionCookieName, Value: "abc"})
	r.AddCookie(&http.Cookie{Name: "custom", Value: "xyz"})

	if got, ok := SessionCookie(FromHTTP(r), ""); !ok || got != "abc" {
		t.Fatalf("default cookie = %q, %v", got, ok)
	}
	if got, ok := SessionCookie(FromHTTP(r), "custom"); !ok || got != "xyz" {
		t.Fatalf("custom cookie = %q, %v", got, ok)
	}
	if _, ok := SessionCookie(FromHTTP(r), "missing"); ok {
		t.Fatal("expected missing cookie to be absent")
	}
	if _, ok := SessionCookie(nil, ""); ok {
		t.Fatal("expected nil request to yield absent cookie")
	}
}

func TestHTTPRequestPath(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/status?x=1", nil)
	if got := FromHTTP(r).Path(); got != "/api/v1/status" {
		t.Fatalf("Path() = %q", got)
	}
}
