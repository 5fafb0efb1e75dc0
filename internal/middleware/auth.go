package middleware

import (
	"net/http"
	"strings"

	httppkg "zonelight/refactor/internal/pkg/http"
)

// Auth guards state-changing requests with apiKey. Reads stay open so the
// preview page works without credentials. An empty key disables the check.
func Auth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			if requestKey(r) != apiKey {
				httppkg.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestKey(r *http.Request) string {
	if v := r.Header.Get("x-api-key"); v != "" {
		return v
	}
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	// Accept both "Bearer xxx" and a bare key.
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
