package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	got := RequestID()
	if !strings.HasPrefix(got, "zl-") {
		t.Fatalf("missing prefix: %q", got)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(got, "zl-")); err != nil {
		t.Fatalf("expected uuid suffix, got %q: %v", got, err)
	}
	if RequestID() == got {
		t.Fatalf("expected distinct ids")
	}
}

func TestApplyID(t *testing.T) {
	got := ApplyID()
	if len(got) != 12 || strings.Contains(got, "-") {
		t.Fatalf("unexpected apply id %q", got)
	}
}
