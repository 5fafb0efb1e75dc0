// Package zone reads and writes the metadata document that tells the
// indicator which corner it belongs to.
//
// The document is a JSON object such as {"zone": 2, "arena": "A"}. zone is
// required and must be an integer; arena is optional.
package zone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zonelight/refactor/internal/pkg/minijson"
)

var (
	ErrMissingField = errors.New("zone: missing field")
	ErrInvalidField = errors.New("zone: invalid field")
)

type Metadata struct {
	Zone  int    `json:"zone"`
	Arena string `json:"arena,omitempty"`
}

// File is a metadata document on disk decoded with a bounded nesting depth.
type File struct {
	Path string
	api  minijson.API
}

func NewFile(path string, maxDepth int) *File {
	return &File{Path: path, api: minijson.Config{MaxDepth: maxDepth}.Froze()}
}

// Load reads path with the default codec settings.
func Load(path string) (Metadata, error) {
	return NewFile(path, minijson.DefaultMaxDepth).Load()
}

// Save writes m to path with the default codec settings.
func Save(path string, m Metadata) error {
	return NewFile(path, minijson.DefaultMaxDepth).Save(m)
}

func (f *File) Load() (Metadata, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Metadata{}, err
	}
	return f.Decode(data)
}

// Decode parses a metadata document.
func (f *File) Decode(data []byte) (Metadata, error) {
	doc, err := f.api.Loads(string(data))
	if err != nil {
		return Metadata{}, err
	}
	return FromObject(doc)
}

func (f *File) Save(m Metadata) error {
	text, err := f.api.Dumps(m.Object())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, []byte(text+"\n"), 0o644)
}

// FromObject extracts the metadata fields from a decoded document. Unknown
// keys are ignored.
func FromObject(doc map[string]any) (Metadata, error) {
	raw, ok := doc["zone"]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: zone", ErrMissingField)
	}
	z, ok := raw.(int64)
	if !ok {
		return Metadata{}, fmt.Errorf("%w: zone must be an integer, got %s", ErrInvalidField, describe(raw))
	}

	m := Metadata{Zone: int(z)}
	switch arena := doc["arena"].(type) {
	case nil:
	case string:
		m.Arena = arena
	default:
		return Metadata{}, fmt.Errorf("%w: arena must be a string, got %s", ErrInvalidField, describe(arena))
	}
	return m, nil
}

// Object is the document form of m, ready for minijson.Dumps.
func (m Metadata) Object() map[string]any {
	doc := map[string]any{"zone": int64(m.Zone)}
	if m.Arena != "" {
		doc["arena"] = m.Arena
	}
	return doc
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
