package percent

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Mode selects how Decode treats a '%' that does not start a valid escape.
type Mode uint8

const (
	// Tolerant passes malformed escapes through as literal text.
	Tolerant Mode = iota
	// Strict fails with KindInvalidEscape on the first malformed escape.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Tolerant:
		return "tolerant"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// Decode reverses Encode. Escapes are matched case-insensitively and malformed
// escapes such as a trailing "%" or "%2" are kept as literal text. The
// unescaped bytes must form valid UTF-8, otherwise a *DecodeError of kind
// KindInvalidText is returned.
func Decode(s string) (string, error) {
	return DecodeMode(s, Tolerant)
}

// DecodeStrict is Decode, except a '%' not followed by two hex digits fails
// with a *DecodeError of kind KindInvalidEscape.
func DecodeStrict(s string) (string, error) {
	return DecodeMode(s, Strict)
}

// DecodeMode decodes s using the given malformed-escape policy.
func DecodeMode(s string, m Mode) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		if utf8.ValidString(s) {
			return s, nil
		}
		return "", validText([]byte(s))
	}
	out, err := unescape(make([]byte, 0, len(s)), s, m)
	if err != nil {
		return "", err
	}
	if err := validText(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// Unescape decodes escapes in b without checking that the result is text.
// Use it for binary payloads; only KindInvalidEscape errors are possible and
// only in Strict mode. The result never aliases b.
func Unescape(b []byte, m Mode) ([]byte, error) {
	if bytes.IndexByte(b, '%') < 0 {
		return append([]byte(nil), b...), nil
	}
	return unescape(make([]byte, 0, len(b)), b, m)
}

func unescape[T string | []byte](dst []byte, s T, m Mode) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			dst = append(dst, c)
			continue
		}
		if i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			dst = append(dst, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		if m == Strict {
			return nil, badEscape(s, i)
		}
		// literal '%'; whatever follows is scanned as ordinary input
		dst = append(dst, '%')
	}
	return dst, nil
}

// badEscape reports the first byte after the '%' at i that breaks the escape.
// When the input ends early the '%' itself is reported.
func badEscape[T string | []byte](s T, i int) *DecodeError {
	for j := i + 1; j < i+3 && j < len(s); j++ {
		if !ishex(s[j]) {
			return &DecodeError{Kind: KindInvalidEscape, Char: s[j], Offset: j}
		}
	}
	return &DecodeError{Kind: KindInvalidEscape, Char: '%', Offset: i}
}

func validText(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	_, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err == nil {
		err = encoding.ErrInvalidUTF8
	}
	e := &DecodeError{Kind: KindInvalidText, Offset: n, Err: err}
	if n < len(b) {
		e.Char = b[n]
	}
	return e
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
