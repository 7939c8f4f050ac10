package percent

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies a decode failure.
type Kind uint8

const (
	// KindInvalidEscape: a '%' not followed by two hex digits (Strict mode only).
	KindInvalidEscape Kind = iota + 1
	// KindInvalidText: the unescaped bytes are not valid UTF-8.
	KindInvalidText
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEscape:
		return "invalid_escape"
	case KindInvalidText:
		return "invalid_text"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *DecodeError matches the sentinel of its Kind.
var (
	ErrInvalidEscape = errors.New("percent: invalid escape")
	ErrInvalidText   = errors.New("percent: invalid text")
)

// DecodeError describes the first problem found while decoding.
//
// For KindInvalidEscape, Char is the offending input byte and Offset its
// position in the input. For KindInvalidText, Offset is the position of the
// first invalid byte in the unescaped output, Char that byte, and Err the
// validator's error.
type DecodeError struct {
	Kind   Kind
	Char   byte
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindInvalidEscape:
		return fmt.Sprintf("percent: invalid escape %s at offset %d", strconv.Quote(string(e.Char)), e.Offset)
	case KindInvalidText:
		return fmt.Sprintf("percent: invalid text at offset %d: %v", e.Offset, e.Err)
	default:
		return fmt.Sprintf("percent: decode failed at offset %d", e.Offset)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrInvalidEscape:
		return e.Kind == KindInvalidEscape
	case ErrInvalidText:
		return e.Kind == KindInvalidText
	}
	return false
}
