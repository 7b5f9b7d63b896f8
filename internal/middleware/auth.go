package middleware

import (
	"context"
	"net/http"
	"strings"

	"messagely/internal/utils"
)

type contextKey string

// UsernameKey holds the authenticated username in the request context.
const UsernameKey contextKey = "username"

// AuthJWT extracts a bearer token from each request and, when it verifies,
// attaches the username to the request context. A missing or invalid token
// leaves the request anonymous rather than rejecting it; restricted routes
// enforce the presence of an identity themselves.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tok := bearerToken(r); tok != "" {
				if username, err := utils.ParseJWT(tok, secret); err == nil {
					ctx := context.WithValue(r.Context(), UsernameKey, username)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken reads the Authorization header, falling back to a token
// query parameter for clients that cannot set headers (the websocket
// handshake).
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// Username returns the authenticated username attached by AuthJWT, if any.
func Username(r *http.Request) (string, bool) {
	u, ok := r.Context().Value(UsernameKey).(string)
	return u, ok && u != ""
}
