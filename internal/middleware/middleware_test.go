package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func TestAuth(t *testing.T) {
	h := Auth("secret")(okHandler())

	cases := []struct {
		method string
		header string
		value  string
		want   int
	}{
		{http.MethodGet, "", "", http.StatusOK},
		{http.MethodPost, "", "", http.StatusUnauthorized},
		{http.MethodPost, "x-api-key", "wrong", http.StatusUnauthorized},
		{http.MethodPost, "x-api-key", "secret", http.StatusOK},
		{http.MethodPost, "Authorization", "Bearer secret", http.StatusOK},
		{http.MethodPost, "Authorization", "secret", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, "/api/zone", nil)
		if tc.header != "" {
			req.Header.Set(tc.header, tc.value)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s %s=%q: status %d, want %d", tc.method, tc.header, tc.value, rec.Code, tc.want)
		}
	}
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	h := Auth("")(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/zone", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestLoggingSetsRequestID(t *testing.T) {
	h := Logging(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get(RequestIDHeader); !strings.HasPrefix(got, "zl-") {
		t.Fatalf("expected generated request id, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "upstream-1" {
		t.Fatalf("expected forwarded request id, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "server_error") {
		t.Fatalf("body %q", rec.Body.String())
	}
}
