package http

import (
	"net/http"

	apperrors "zonelight/refactor/internal/pkg/errors"
	jsonpkg "zonelight/refactor/internal/pkg/json"
)

// WriteError writes {"error":{"message":...,"type":...}}. The type is
// derived from the status class.
func WriteError(w http.ResponseWriter, status int, msg string) {
	typ := "invalid_request_error"
	if status >= 500 {
		typ = "server_error"
	}
	encoded, _ := jsonpkg.MarshalString(msg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":{"message":` + encoded + `,"type":"` + typ + `"}}`))
}

// WriteErr writes err using the status it carries, 500 otherwise.
func WriteErr(w http.ResponseWriter, err error) {
	WriteError(w, apperrors.StatusOf(err), err.Error())
}
