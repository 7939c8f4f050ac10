package codec

import "github.com/goccy/go-json"

// JSON is a Codec backed by goccy/go-json. JSON output is UTF-8 but not
// ASCII-safe; wrap it in Percent when that matters.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
