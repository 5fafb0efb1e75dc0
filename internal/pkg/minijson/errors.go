package minijson

import (
	"errors"
	"fmt"
)

// Kind classifies a codec failure so callers can branch without matching
// message text.
type Kind int

const (
	KindMalformed         Kind = iota + 1 // required token missing
	KindInvalidValueStart                 // unrecognised value dispatch character
	KindInvalidLiteral                    // t/f/n not followed by true/false/null
	KindUnsupportedEscape                 // \u escape
	KindInvalidEscape                     // any other unknown escape
	KindInvalidNumber                     // numeric literal rejected by strconv
	KindIncomplete                        // ran out of input
	KindUnsupportedType                   // encoder only
)

var (
	ErrMalformed         = errors.New("minijson: malformed structure")
	ErrInvalidValueStart = errors.New("minijson: invalid value start")
	ErrInvalidLiteral    = errors.New("minijson: invalid literal")
	ErrUnsupportedEscape = errors.New("minijson: unicode escapes are not supported")
	ErrInvalidEscape     = errors.New("minijson: invalid escape")
	ErrInvalidNumber     = errors.New("minijson: invalid number")
	ErrIncomplete        = errors.New("minijson: incomplete JSON document")
	ErrUnsupportedType   = errors.New("minijson: unsupported type")

	// ErrMaxDepth is wrapped by a KindMalformed error when nesting exceeds
	// Config.MaxDepth.
	ErrMaxDepth = errors.New("minijson: max depth exceeded")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMalformed:
		return ErrMalformed
	case KindInvalidValueStart:
		return ErrInvalidValueStart
	case KindInvalidLiteral:
		return ErrInvalidLiteral
	case KindUnsupportedEscape:
		return ErrUnsupportedEscape
	case KindInvalidEscape:
		return ErrInvalidEscape
	case KindInvalidNumber:
		return ErrInvalidNumber
	case KindIncomplete:
		return ErrIncomplete
	case KindUnsupportedType:
		return ErrUnsupportedType
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInvalidValueStart:
		return "invalid-value-start"
	case KindInvalidLiteral:
		return "invalid-literal"
	case KindUnsupportedEscape:
		return "unsupported-escape"
	case KindInvalidEscape:
		return "invalid-escape"
	case KindInvalidNumber:
		return "invalid-number"
	case KindIncomplete:
		return "incomplete"
	case KindUnsupportedType:
		return "unsupported-type"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every failing Loads/Dumps call.
//
// Offset is the byte offset into the input where the failure was detected,
// or -1 for encoder errors. Char is set for KindInvalidValueStart and
// KindInvalidEscape.
type Error struct {
	Kind   Kind
	Offset int
	Char   byte
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return "minijson: " + e.Msg
	}
	return fmt.Sprintf("minijson: %s, index: %d", e.Msg, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports true for the sentinel matching e.Kind, so
// errors.Is(err, ErrIncomplete) works without errors.As.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind Kind, offset int, msg string) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg}
}

func incomplete(offset int) *Error {
	return newError(KindIncomplete, offset, "incomplete JSON object")
}

// KindOf returns the Kind of a codec error, or 0 if err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
