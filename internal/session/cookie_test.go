package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetCookieDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "sid-1", CookieOptions{Secure: true})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	c := cookies[0]
	if c.Name != DefaultCookieName || c.Value != "sid-1" {
		t.Fatalf("cookie = %s=%s", c.Name, c.Value)
	}
	if c.Path != "/" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected attributes: %+v", c)
	}
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, CookieOptions{Name: "custom"})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	if c := cookies[0]; c.Name != "custom" || c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("unexpected cleared cookie: %+v", c)
	}
}
