package excel

import (
	"bytes"
	"encoding/json"

	"github.com/mafei198/sheetgen/literal"
)

// Record is one data row keyed by header name. Keys keep header order.
type Record struct {
	keys   []string
	values map[string]interface{}
}

func NewRecord() *Record {
	return &Record{
		keys:   make([]string, 0),
		values: map[string]interface{}{},
	}
}

// Set stores v under key. A repeated key keeps its first position and takes
// the new value.
func (r *Record) Set(key string, v interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// IsBlank reports whether no value of the record is truthy.
func (r *Record) IsBlank() bool {
	for _, v := range r.values {
		if truthy(v) {
			return false
		}
	}
	return true
}

func (r *Record) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSON(buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSON(buf, r.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON writes v without HTML escaping and without the trailing newline
// json.Encoder appends.
func encodeJSON(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0
	case []interface{}:
		return len(x) > 0
	case literal.Tuple:
		return len(x) > 0
	case *literal.Dict:
		return x.Len() > 0
	default:
		return true
	}
}
