package auth

import "net/http"

const (
	// DefaultSessionCookieName is used when SESSION_NAME is not configured.
	DefaultSessionCookieName = "_my_session_id"

	authorizationHeader = "Authorization"
)

// Request is the slice of an inbound request the auth layer reads.
type Request interface {
	Path() string
	Header(name string) (string, bool)
	Cookie(name string) (string, bool)
}

// HTTPRequest adapts *http.Request to Request.
type HTTPRequest struct {
	req *http.Request
}

// FromHTTP wraps r. A nil r yields a nil Request so extractors
// treat it as absent.
func FromHTTP(r *http.Request) Request {
	if r == nil {
		return nil
	}
	return HTTPRequest{req: r}
}

func (r HTTPRequest) Path() string {
	return r.req.URL.Path
}

func (r HTTPRequest) Header(name string) (string, bool) {
	values, ok := r.req.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (r HTTPRequest) Cookie(name string) (string, bool) {
	c, err := r.req.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// AuthorizationHeader returns the Authorization header of r, if any.
func AuthorizationHeader(r Request) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.Header(authorizationHeader)
}

// SessionCookie returns the value of the named cookie on r, if any.
// An empty name falls back to DefaultSessionCookieName.
func SessionCookie(r Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	if name == "" {
		name = DefaultSessionCookieName
	}
	return r.Cookie(name)
}
