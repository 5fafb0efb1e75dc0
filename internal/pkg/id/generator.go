package id

import (
	"strings"

	"github.com/google/uuid"
)

// RequestID tags one preview HTTP request in logs and response headers.
func RequestID() string { return "zl-" + uuid.New().String() }

// ApplyID identifies one application of zone metadata to the strip: the
// initial file load or a later HTTP update.
func ApplyID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
