package errors

import (
	stderrors "errors"
	"net/http"
)

type HTTPError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Err }

// Wrap attaches a status code to err, using err's text as the message.
func Wrap(status int, err error) *HTTPError {
	return &HTTPError{StatusCode: status, Message: err.Error(), Err: err}
}

func BadRequest(msg string) *HTTPError { return &HTTPError{StatusCode: http.StatusBadRequest, Message: msg} }

func Unauthorized(msg string) *HTTPError { return &HTTPError{StatusCode: http.StatusUnauthorized, Message: msg} }

func NotFound(msg string) *HTTPError { return &HTTPError{StatusCode: http.StatusNotFound, Message: msg} }

func Unprocessable(msg string) *HTTPError {
	return &HTTPError{StatusCode: http.StatusUnprocessableEntity, Message: msg}
}

func Internal(msg string) *HTTPError { return &HTTPError{StatusCode: http.StatusInternalServerError, Message: msg} }

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he.StatusCode
	}
	return http.StatusInternalServerError
}
