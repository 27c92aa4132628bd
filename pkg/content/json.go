package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// JSONValue is a read-only view over a decoded JSON tree.
//
// The tree uses the shapes produced by encoding/json: map[string]any, []any,
// string, json.Number (or float64), bool and nil. Scalars coerce through their
// canonical text, so a JSON true behaves like the text "true".
type JSONValue struct {
	v any
}

// NewJSON wraps an already decoded tree.
func NewJSON(tree any) JSONValue {
	return JSONValue{v: tree}
}

// ParseJSON decodes a single JSON document, keeping numbers in their textual form.
func ParseJSON(data []byte) (JSONValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return JSONValue{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return JSONValue{}, fmt.Errorf("%w: trailing data after JSON document", ErrMalformedBody)
	}
	return JSONValue{v: tree}, nil
}

// Value returns the underlying tree.
func (j JSONValue) Value() any { return j.v }

// Index returns the i-th element if the value is an array.
func (j JSONValue) Index(i int) (JSONValue, bool) {
	arr, ok := j.v.([]any)
	if !ok || i < 0 || i >= len(arr) {
		return JSONValue{}, false
	}
	return JSONValue{v: arr[i]}, true
}

// Key returns the member named key if the value is an object.
func (j JSONValue) Key(key string) (JSONValue, bool) {
	obj, ok := j.v.(map[string]any)
	if !ok {
		return JSONValue{}, false
	}
	v, ok := obj[key]
	if !ok {
		return JSONValue{}, false
	}
	return JSONValue{v: v}, true
}

// scalar returns the canonical text of a JSON scalar.
func (j JSONValue) scalar() (Text, bool) {
	switch v := j.v.(type) {
	case string:
		return Text(v), true
	case json.Number:
		return Text(v.String()), true
	case float64:
		return Text(strconv.FormatFloat(v, 'g', -1, 64)), true
	case bool:
		return Text(strconv.FormatBool(v)), true
	}
	return "", false
}

func (j JSONValue) IsNull() bool {
	if j.v == nil {
		return true
	}
	t, ok := j.scalar()
	return ok && t.IsNull()
}

func (j JSONValue) Bool() (bool, bool) {
	t, ok := j.scalar()
	if !ok {
		return false, false
	}
	return t.Bool()
}

func (j JSONValue) Int() (int, bool) {
	t, ok := j.scalar()
	if !ok {
		return 0, false
	}
	return t.Int()
}

func (j JSONValue) Uint() (uint, bool) {
	t, ok := j.scalar()
	if !ok {
		return 0, false
	}
	return t.Uint()
}

func (j JSONValue) Float() (float32, bool) {
	t, ok := j.scalar()
	if !ok {
		return 0, false
	}
	return t.Float()
}

func (j JSONValue) Double() (float64, bool) {
	t, ok := j.scalar()
	if !ok {
		return 0, false
	}
	return t.Double()
}

func (j JSONValue) Text() (string, bool) {
	t, ok := j.scalar()
	return string(t), ok
}

// Array returns the elements of a JSON array, or j itself for a scalar.
// Objects and null have no array form.
func (j JSONValue) Array() ([]Node, bool) {
	switch v := j.v.(type) {
	case []any:
		nodes := make([]Node, len(v))
		for i, item := range v {
			nodes[i] = JSONValue{v: item}
		}
		return nodes, true
	case map[string]any, nil:
		return nil, false
	}
	return []Node{j}, true
}

func (j JSONValue) Object() (map[string]Node, bool) {
	obj, ok := j.v.(map[string]any)
	if !ok {
		return nil, false
	}
	nodes := make(map[string]Node, len(obj))
	for k, v := range obj {
		nodes[k] = JSONValue{v: v}
	}
	return nodes, true
}

func (j JSONValue) JSON() (JSONValue, bool) { return j, true }

// MarshalJSON encodes the underlying tree.
func (j JSONValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.v)
}

func (JSONValue) node() {}
