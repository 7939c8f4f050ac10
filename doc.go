// Package percent implements percent-encoding of byte strings.
//
// Encode leaves the unreserved bytes (A-Z a-z 0-9 - . _ ~) alone and turns
// every other byte into a %XX triplet with uppercase hex digits:
//
//	percent.Encode("\U0001F47E Exterminate!") // "%F0%9F%91%BE%20Exterminate%21"
//
// Decode reverses it. By default it is tolerant: a '%' that does not start a
// valid escape is kept literally, so "that%" and "that%2" decode to
// themselves. DecodeStrict (or DecodeMode with Strict) rejects those inputs
// instead. Either way the decoded bytes must be valid UTF-8; Unescape skips
// that check for binary payloads.
//
// The package knows nothing about URI structure: '/', '?', '&', '=' and '+'
// are ordinary unsafe bytes.
//
// Sub-packages put the codec to work:
//   - codec: value codecs (JSON, CBOR, Msgpack, Protobuf) and wrappers that make
//     their output ASCII-safe.
//   - provider: byte stores with TTL (Ristretto, BigCache, Redis).
//   - keyspace: a namespaced typed store whose keys are percent-escaped, so
//     arbitrary user keys never collide across namespaces.
package percent
