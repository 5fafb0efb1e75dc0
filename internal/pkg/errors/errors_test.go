package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	if got := StatusOf(BadRequest("bad")); got != http.StatusBadRequest {
		t.Fatalf("StatusOf(BadRequest) = %d", got)
	}
	wrapped := fmt.Errorf("apply: %w", NotFound("missing"))
	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Fatalf("StatusOf(wrapped) = %d", got)
	}
	if got := StatusOf(stderrors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf(plain) = %d", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("zone out of range")
	he := Wrap(http.StatusUnprocessableEntity, cause)
	if he.Error() != cause.Error() {
		t.Fatalf("message mismatch: %q", he.Error())
	}
	if !stderrors.Is(he, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}
