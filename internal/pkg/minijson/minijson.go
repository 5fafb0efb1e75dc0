// Package minijson is a small JSON codec with no third-party dependencies.
//
// Loads decodes a JSON object into map[string]any, []any, string, int64,
// float64, bool and nil values. Numbers whose literal contains '.', 'e' or
// 'E' decode as float64, all others as int64. Unicode escapes (\uXXXX) are
// rejected. The top-level value must be an object on both sides.
//
// Dumps encodes such a tree back to text. Object keys are written in sorted
// order, so equal inputs always produce equal output.
package minijson

// DefaultMaxDepth bounds object/array nesting for the package-level
// functions.
const DefaultMaxDepth = 512

// Config controls decoding. The zero value has no depth limit and ignores
// content after the top-level object.
type Config struct {
	// MaxDepth is the maximum object/array nesting depth, counting the
	// top-level object as 1. Zero or negative means unlimited.
	MaxDepth int

	// DisallowTrailing rejects non-whitespace content after the closing
	// brace of the top-level object.
	DisallowTrailing bool
}

// API is a frozen Config. It holds no mutable state and is safe for
// concurrent use.
type API struct {
	cfg Config
}

// Froze returns an API bound to a copy of c.
func (c Config) Froze() API { return API{cfg: c} }

var std = Config{MaxDepth: DefaultMaxDepth}.Froze()

func Loads(s string) (map[string]any, error) { return std.Loads(s) }

func LoadsBytes(data []byte) (map[string]any, error) { return std.Loads(string(data)) }

func Dumps(v any) (string, error) { return std.Dumps(v) }

func DumpsBytes(v any) ([]byte, error) { return std.DumpsBytes(v) }

// Loads decodes s, which must hold a JSON object.
func (a API) Loads(s string) (map[string]any, error) {
	if len(s) == 0 {
		return nil, incomplete(0)
	}
	if s[0] != '{' {
		return nil, newError(KindMalformed, 0, "invalid JSON object")
	}

	d := decoder{data: s, maxDepth: a.cfg.MaxDepth}
	obj, idx, err := d.parseObject(1, 1)
	if err != nil {
		return nil, err
	}
	if a.cfg.DisallowTrailing {
		for ; idx < len(s); idx++ {
			if !isSpace(s[idx]) {
				return nil, newError(KindMalformed, idx, "trailing data after JSON object")
			}
		}
	}
	return obj, nil
}

// Dumps encodes v, which must be a map[string]any.
func (a API) Dumps(v any) (string, error) {
	b, err := a.DumpsBytes(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (a API) DumpsBytes(v any) ([]byte, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, unsupported("the outer container must be an object, got %T", v)
	}
	e := encoder{buf: make([]byte, 0, 128)}
	if err := e.writeObject(obj); err != nil {
		return nil, err
	}
	return e.buf, nil
}
