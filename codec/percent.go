package codec

import (
	"errors"

	"github.com/unkn0wn-root/percent"
)

var ErrNilInner = errors.New("codec: inner codec is nil")

// Percent wraps another codec so that its payload is percent-encoded.
// Encode output contains only unreserved bytes, '%' and hex digits.
// Decode unescapes using Mode and hands the raw bytes to Inner; no UTF-8
// check is made, so binary inner formats (CBOR, Msgpack, Protobuf) work.
//
//	c := codec.Percent[User]{Inner: codec.MustCBOR[User](true), Mode: percent.Strict}
type Percent[V any] struct {
	Inner Codec[V]
	Mode  percent.Mode
}

var _ Codec[[]byte] = Percent[[]byte]{}

func (c Percent[V]) Encode(v V) ([]byte, error) {
	if c.Inner == nil {
		return nil, ErrNilInner
	}
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return percent.EncodeBytes(b), nil
}

func (c Percent[V]) Decode(b []byte) (V, error) {
	var zero V
	if c.Inner == nil {
		return zero, ErrNilInner
	}
	raw, err := percent.Unescape(b, c.Mode)
	if err != nil {
		return zero, err
	}
	return c.Inner.Decode(raw)
}
