package middleware

import (
	"net/http"

	"zonelight/refactor/internal/logger"
	httppkg "zonelight/refactor/internal/pkg/http"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic: %v", v)
				httppkg.WriteError(w, http.StatusInternalServerError, "internal error, see server log")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
