package minijson

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

type encoder struct {
	buf []byte
}

func unsupported(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupportedType, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

func (e *encoder) writeObject(obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.buf = append(e.buf, '{')
	for i, k := range keys {
		if i > 0 {
			e.buf = append(e.buf, ',', ' ')
		}
		e.writeString(k)
		e.buf = append(e.buf, ':', ' ')
		if err := e.writeValue(obj[k]); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, '}')
	return nil
}

func (e *encoder) writeArray(arr []any) error {
	e.buf = append(e.buf, '[')
	for i, v := range arr {
		if i > 0 {
			e.buf = append(e.buf, ',', ' ')
		}
		if err := e.writeValue(v); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encoder) writeValue(v any) error {
	switch x := v.(type) {
	case nil:
		e.buf = append(e.buf, "null"...)
	case bool:
		if x {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case map[string]any:
		return e.writeObject(x)
	case []any:
		return e.writeArray(x)
	case string:
		e.writeString(x)
	case int:
		e.buf = strconv.AppendInt(e.buf, int64(x), 10)
	case int8:
		e.buf = strconv.AppendInt(e.buf, int64(x), 10)
	case int16:
		e.buf = strconv.AppendInt(e.buf, int64(x), 10)
	case int32:
		e.buf = strconv.AppendInt(e.buf, int64(x), 10)
	case int64:
		e.buf = strconv.AppendInt(e.buf, x, 10)
	case uint:
		e.buf = strconv.AppendUint(e.buf, uint64(x), 10)
	case uint8:
		e.buf = strconv.AppendUint(e.buf, uint64(x), 10)
	case uint16:
		e.buf = strconv.AppendUint(e.buf, uint64(x), 10)
	case uint32:
		e.buf = strconv.AppendUint(e.buf, uint64(x), 10)
	case uint64:
		e.buf = strconv.AppendUint(e.buf, x, 10)
	case float32:
		return e.writeFloat(float64(x), 32)
	case float64:
		return e.writeFloat(x, 64)
	default:
		return unsupported("unsupported object type %T", v)
	}
	return nil
}

// writeFloat keeps a '.' or exponent in the output so the number decodes
// back as a float.
func (e *encoder) writeFloat(f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return unsupported("unsupported float value %v", f)
	}
	start := len(e.buf)
	e.buf = strconv.AppendFloat(e.buf, f, 'g', -1, bits)
	for _, c := range e.buf[start:] {
		if c == '.' || c == 'e' {
			return nil
		}
	}
	e.buf = append(e.buf, '.', '0')
	return nil
}

func (e *encoder) writeString(s string) {
	e.buf = append(e.buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		var esc byte
		switch s[i] {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\f':
			esc = 'f'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			continue
		}
		e.buf = append(e.buf, s[start:i]...)
		e.buf = append(e.buf, '\\', esc)
		start = i + 1
	}
	e.buf = append(e.buf, s[start:]...)
	e.buf = append(e.buf, '"')
}
