package literal

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Dict is a braced mapping. Keys are kept as their JSON object key text in
// first-seen order; a repeated key takes the last value.
type Dict struct {
	keys   []string
	values map[string]interface{}
}

func NewDict() *Dict {
	return &Dict{
		keys:   make([]string, 0),
		values: map[string]interface{}{},
	}
}

func (d *Dict) Set(key string, v interface{}) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

func (d *Dict) Get(key string) (interface{}, bool) {
	v, ok := d.values[key]
	return v, ok
}

func (d *Dict) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

func (d *Dict) Len() int {
	return len(d.keys)
}

// MarshalJSON writes the mapping as an object in key order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(buf, d.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// dictKey renders a scalar key the way it appears as a JSON object key.
// Strings stay as they are; numbers, booleans and None use their JSON text.
func dictKey(v interface{}) (string, bool) {
	switch k := v.(type) {
	case string:
		return k, true
	case int64:
		return strconv.FormatInt(k, 10), true
	case json.Number:
		return k.String(), true
	case float64:
		format := byte('f')
		if abs := math.Abs(k); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
			format = 'e'
		}
		s := strconv.FormatFloat(k, format, -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s, true
	case bool:
		if k {
			return "true", true
		}
		return "false", true
	case nil:
		return "null", true
	}
	return "", false
}
