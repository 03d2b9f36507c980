package httpapi

import (
	"context"
	"net/http"
	"strings"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/session"
)

type sessionKey struct{}

// withSession resolves the bearer token to a live session and stores it in
// the request context. Everything behind it can assume an identity.
func (a *API) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			writeProblem(w, http.StatusUnauthorized, "missing_token", "Authorization header required")
			return
		}
		sess, ok := a.sessions.Get(token)
		if !ok {
			writeProblem(w, http.StatusUnauthorized, "invalid_token", "unknown or expired session")
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionFrom(r).Role != domain.RoleAdmin {
			writeProblem(w, http.StatusForbidden, "admin_only", "administrator session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFrom returns the session placed by withSession. Only reachable
// behind that middleware.
func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(sessionKey{}).(*session.Session)
}
