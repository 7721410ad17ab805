package auth

import (
	"log/slog"
	"net/http"

	"github.com/uptown-october/uptown-docs/internal/platform/httpx"
)

// Middleware wires session loading and role gates for HTTP handlers.
type Middleware struct {
	Sessions *SessionManager
	Logger   *slog.Logger
}

// LoadUser resolves the session cookie and attaches the user to context.
// Requests without a session continue unauthenticated; role gates reject
// them downstream.
func (m Middleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.Sessions.Load(r.Context(), r)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Error("load session", slog.Any("error", err))
			}
			httpx.Error(w, http.StatusInternalServerError, "session lookup failed", "")
			return
		}
		if user != nil {
			r = r.WithContext(ContextWithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the current user holds one of the allowed roles.
func (m Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				httpx.Error(w, http.StatusUnauthorized, "authentication required", "")
				return
			}
			if _, ok := allowed[user.Role]; !ok {
				if m.Logger != nil {
					m.Logger.Warn("role denied",
						slog.String("role", user.Role), slog.String("path", r.URL.Path))
				}
				httpx.Error(w, http.StatusForbidden, "insufficient role", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
