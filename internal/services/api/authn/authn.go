// Package authn provides the operator auth port for protected routes
package authn

import (
	"crypto/subtle"
	"net/http"

	perr "buyside/internal/platform/errors"
	"buyside/internal/platform/net/middleware"
)

// Static returns an AuthPort that accepts one shared operator token.
// An empty token returns nil, which leaves the routes open; the auth
// middleware no-ops on a nil port
func Static(token string) middleware.AuthPort {
	if token == "" {
		return nil
	}
	return staticPort{token: token}
}

type staticPort struct{ token string }

// Parse implements middleware.AuthPort
func (p staticPort) Parse(r *http.Request) (string, string, error) {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if len(authz) <= len(prefix) || authz[:len(prefix)] != prefix {
		return "", "", perr.Unauthorizedf("missing bearer token")
	}
	got := authz[len(prefix):]
	if subtle.ConstantTimeCompare([]byte(got), []byte(p.token)) != 1 {
		return "", "", perr.Unauthorizedf("bad operator token")
	}
	return "operator", "", nil
}
