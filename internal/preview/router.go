package preview

import (
	"context"
	"errors"
	"net/http"

	"zonelight/refactor/internal/corner"
	"zonelight/refactor/internal/middleware"
	httppkg "zonelight/refactor/internal/pkg/http"
)

func NewRouter(c *corner.Controller, apiKey string) http.Handler {
	h := &handler{ctrl: c}
	mux := http.NewServeMux()

	mux.HandleFunc("/health", allowMethods(handleHealth, http.MethodGet, http.MethodHead))
	mux.HandleFunc("/api/strip", allowMethods(h.handleStrip, http.MethodGet, http.MethodHead))
	mux.HandleFunc("/api/zone", allowMethods(h.handleZone, http.MethodGet, http.MethodHead, http.MethodPost))
	mux.HandleFunc("/", allowMethods(h.handlePage, http.MethodGet, http.MethodHead))

	var out http.Handler = mux
	out = middleware.Auth(apiKey)(out)
	out = middleware.Recovery(out)
	out = middleware.Logging(out)
	return out
}

func allowMethods(h http.HandlerFunc, methods ...string) http.HandlerFunc {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := allowed[r.Method]; ok {
			h(w, r)
			return
		}
		if errors.Is(r.Context().Err(), context.Canceled) {
			return
		}
		httppkg.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
