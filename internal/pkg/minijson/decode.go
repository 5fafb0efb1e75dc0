package minijson

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decoder walks data with an explicit cursor. Every parse method takes the
// index to start at and returns the index just past what it consumed.
type decoder struct {
	data     string
	maxDepth int
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Loose on purpose: strconv decides whether the literal is valid.
func isNumberChar(c byte) bool {
	switch c {
	case '+', '-', '.', 'e', 'E', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

// skipSpace returns the index of the next non-whitespace byte. Reaching the
// end of input is an incomplete document.
func (d *decoder) skipSpace(idx int) (int, error) {
	for ; idx < len(d.data); idx++ {
		if !isSpace(d.data[idx]) {
			return idx, nil
		}
	}
	return idx, incomplete(idx)
}

func (d *decoder) checkDepth(open, depth int) error {
	if d.maxDepth > 0 && depth > d.maxDepth {
		return &Error{
			Kind:   KindMalformed,
			Offset: open,
			Msg:    fmt.Sprintf("max depth %d exceeded", d.maxDepth),
			Err:    ErrMaxDepth,
		}
	}
	return nil
}

// parseObject parses the members of an object whose '{' sits at start-1.
func (d *decoder) parseObject(start, depth int) (map[string]any, int, error) {
	if err := d.checkDepth(start-1, depth); err != nil {
		return nil, start, err
	}

	idx, err := d.skipSpace(start)
	if err != nil {
		return nil, idx, err
	}
	obj := make(map[string]any)
	if d.data[idx] == '}' {
		return obj, idx + 1, nil
	}

	var (
		key   string
		value any
	)
	for {
		if idx, err = d.skipSpace(idx); err != nil {
			return nil, idx, err
		}
		if d.data[idx] != '"' {
			return nil, idx, newError(KindMalformed, idx, "object key is not a string")
		}
		if key, idx, err = d.parseString(idx + 1); err != nil {
			return nil, idx, err
		}
		if idx, err = d.skipSpace(idx); err != nil {
			return nil, idx, err
		}
		if d.data[idx] != ':' {
			return nil, idx, newError(KindMalformed, idx, "invalid key value pair")
		}
		if value, idx, err = d.parseValue(idx+1, depth); err != nil {
			return nil, idx, err
		}

		obj[key] = value
		if d.data[idx] != ',' {
			break
		}
		idx++
	}

	if d.data[idx] == '}' {
		return obj, idx + 1, nil
	}
	return nil, idx, newError(KindMalformed, idx, "incomplete JSON object")
}

// parseArray parses the elements of an array whose '[' sits at start-1.
func (d *decoder) parseArray(start, depth int) ([]any, int, error) {
	if err := d.checkDepth(start-1, depth); err != nil {
		return nil, start, err
	}

	idx, err := d.skipSpace(start)
	if err != nil {
		return nil, idx, err
	}
	arr := make([]any, 0)
	if d.data[idx] == ']' {
		return arr, idx + 1, nil
	}

	var value any
	for {
		if value, idx, err = d.parseValue(idx, depth); err != nil {
			return nil, idx, err
		}

		arr = append(arr, value)
		if d.data[idx] != ',' {
			break
		}
		idx++
	}

	if d.data[idx] == ']' {
		return arr, idx + 1, nil
	}
	return nil, idx, newError(KindMalformed, idx, "incomplete JSON array")
}

// parseValue parses one value and the whitespace after it, so on success
// the returned index always points at a real byte.
func (d *decoder) parseValue(start, depth int) (any, int, error) {
	idx, err := d.skipSpace(start)
	if err != nil {
		return nil, idx, err
	}

	var value any
	switch c := d.data[idx]; {
	case c == '{':
		value, idx, err = d.parseObject(idx+1, depth+1)
	case c == '[':
		value, idx, err = d.parseArray(idx+1, depth+1)
	case c == '"':
		value, idx, err = d.parseString(idx + 1)
	case c == 't' || c == 'f' || c == 'n':
		value, idx, err = d.parseLiteral(idx)
	case c == '-' || (c >= '0' && c <= '9'):
		value, idx, err = d.parseNumber(idx)
	default:
		return nil, idx, &Error{
			Kind:   KindInvalidValueStart,
			Offset: idx,
			Char:   c,
			Msg:    fmt.Sprintf("invalid value starting character: %q", c),
		}
	}
	if err != nil {
		return nil, idx, err
	}

	if idx, err = d.skipSpace(idx); err != nil {
		return nil, idx, err
	}
	return value, idx, nil
}

func (d *decoder) parseLiteral(start int) (any, int, error) {
	rest := d.data[start:]
	switch {
	case strings.HasPrefix(rest, "true"):
		return true, start + 4, nil
	case strings.HasPrefix(rest, "false"):
		return false, start + 5, nil
	case strings.HasPrefix(rest, "null"):
		return nil, start + 4, nil
	}
	return nil, start, newError(KindInvalidLiteral, start, "malformed JSON literal")
}

// parseString decodes a string whose opening quote sits at start-1.
func (d *decoder) parseString(start int) (string, int, error) {
	var buf []byte
	idx := start
	for {
		if idx >= len(d.data) {
			return "", idx, incomplete(idx)
		}
		c := d.data[idx]
		if c == '"' {
			break
		}
		if c != '\\' {
			idx++
			continue
		}

		buf = append(buf, d.data[start:idx]...)
		if idx+1 >= len(d.data) {
			return "", idx + 1, incomplete(idx + 1)
		}
		switch esc := d.data[idx+1]; esc {
		case '"', '\\', '/':
			buf = append(buf, esc)
		case 'b':
			// Backspace removes the last decoded character.
			if len(buf) > 0 {
				_, size := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-size]
			}
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			return "", idx, newError(KindUnsupportedEscape, idx, "unicode escapes are not supported")
		default:
			return "", idx, &Error{
				Kind:   KindInvalidEscape,
				Offset: idx,
				Char:   esc,
				Msg:    fmt.Sprintf("invalid escape character %q", esc),
			}
		}
		idx += 2
		start = idx
	}

	// Copy so decoded values never pin the input buffer.
	if buf == nil {
		return strings.Clone(d.data[start:idx]), idx + 1, nil
	}
	buf = append(buf, d.data[start:idx]...)
	return string(buf), idx + 1, nil
}

func (d *decoder) parseNumber(start int) (any, int, error) {
	idx := start
	isFloat := false
	for {
		if idx >= len(d.data) {
			return nil, idx, incomplete(idx)
		}
		c := d.data[idx]
		if !isNumberChar(c) {
			break
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
		}
		idx++
	}

	lit := d.data[start:idx]
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, start, invalidNumber(start, lit, err)
		}
		return f, idx, nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, start, invalidNumber(start, lit, err)
	}
	return i, idx, nil
}

func invalidNumber(offset int, lit string, err error) *Error {
	return &Error{
		Kind:   KindInvalidNumber,
		Offset: offset,
		Msg:    fmt.Sprintf("invalid number %q", lit),
		Err:    err,
	}
}
