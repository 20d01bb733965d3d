package httpapi

import (
	"context"
	"net/http"
	"strings"

	"goldenhand-backend/internal/services"
)

type contextKey string

const ctxPrincipal contextKey = "principal"

func WithAuth(tokenService services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			principal, err := tokenService.Authenticate(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			ctx := context.WithValue(r.Context(), ctxPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentPrincipal(r *http.Request) (services.Principal, bool) {
	principal, ok := r.Context().Value(ctxPrincipal).(services.Principal)
	return principal, ok
}

func CurrentUserID(r *http.Request) string {
	if principal, ok := CurrentPrincipal(r); ok {
		return principal.UserID
	}
	return ""
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return RequireAnyRole(role)
}

func RequireAnyRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := CurrentPrincipal(r)
			if ok && principal.HasAnyRole(roles...) {
				next.ServeHTTP(w, r)
				return
			}
			WriteError(w, http.StatusForbidden, "Not allowed")
		})
	}
}
