package middleware

import (
	"net/http"
	"time"

	"zonelight/refactor/internal/logger"
	"zonelight/refactor/internal/pkg/id"
)

const RequestIDHeader = "X-Request-Id"

// Logging tags every response with a request id and, when debug logging
// is on, prints a request line after the handler returns.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = id.RequestID()
		}
		w.Header().Set(RequestIDHeader, reqID)

		if r.URL.Path == "/favicon.ico" || logger.GetLevel() == logger.LogOff {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.Request(r.Method, r.URL.Path, sw.statusCode, time.Since(start), reqID)
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
