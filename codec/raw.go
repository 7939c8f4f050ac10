package codec

import "github.com/unkn0wn-root/percent"

// Bytes is an identity codec for []byte values.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// Text stores strings in percent-encoded form. Decode is tolerant of
// malformed escapes but rejects payloads that do not unescape to UTF-8.
type Text struct{}

func (Text) Encode(s string) ([]byte, error) { return percent.EncodeBytes([]byte(s)), nil }
func (Text) Decode(b []byte) (string, error) { return percent.Decode(string(b)) }

// StrictText is Text with strict escape validation on Decode.
type StrictText struct{}

func (StrictText) Encode(s string) ([]byte, error) { return percent.EncodeBytes([]byte(s)), nil }
func (StrictText) Decode(b []byte) (string, error) { return percent.DecodeStrict(string(b)) }
