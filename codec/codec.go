// Package codec converts values to and from bytes.
//
// The serializers (JSON, CBOR, Msgpack, Protobuf, Bytes) produce arbitrary
// bytes. Wrap one in Percent to get an ASCII-only payload that can travel
// through text-only channels (headers, query values, line protocols), or use
// Text for plain strings.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
