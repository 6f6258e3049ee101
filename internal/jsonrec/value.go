// Package jsonrec reconstructs structured JSON from noisy model output and
// merges per-page values into one document-level object.
package jsonrec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindScalar
)

// Value is a tagged JSON value. Objects keep insertion order so merged
// documents serialize deterministically.
type Value struct {
	kind   Kind
	keys   []string
	obj    map[string]*Value
	arr    []*Value
	scalar json.RawMessage
}

func Null() *Value { return &Value{kind: KindNull} }

func NewObject() *Value {
	return &Value{kind: KindObject, obj: map[string]*Value{}}
}

func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}

// String builds a scalar string value.
func String(s string) *Value {
	b, _ := json.Marshal(s)
	return &Value{kind: KindScalar, scalar: b}
}

func (v *Value) Kind() Kind { return v.kind }

// Scalar returns the raw JSON encoding of a scalar value, nil otherwise.
func (v *Value) Scalar() json.RawMessage {
	if v == nil || v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

func (v *Value) IsObject() bool { return v != nil && v.kind == KindObject }
func (v *Value) IsArray() bool  { return v != nil && v.kind == KindArray }

// Get returns the member value for key, or nil.
func (v *Value) Get(key string) *Value {
	if !v.IsObject() {
		return nil
	}
	return v.obj[key]
}

// Set writes a member, preserving first-insertion key order.
func (v *Value) Set(key string, val *Value) {
	if !v.IsObject() {
		return
	}
	if _, exists := v.obj[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.obj[key] = val
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if !v.IsObject() {
		return nil
	}
	return v.keys
}

// Append adds an item to an array value.
func (v *Value) Append(items ...*Value) {
	if v.IsArray() {
		v.arr = append(v.arr, items...)
	}
}

// Items returns an array's elements.
func (v *Value) Items() []*Value {
	if !v.IsArray() {
		return nil
	}
	return v.arr
}

// Len returns the member/element count for objects and arrays, 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	}
	return 0
}

// isEmpty reports the merge notion of emptiness: null, empty string, or empty
// array. Empty objects are NOT empty (they still merge recursively).
func (v *Value) isEmpty() bool {
	if v == nil {
		return true
	}
	switch v.kind {
	case KindNull:
		return true
	case KindArray:
		return len(v.arr) == 0
	case KindScalar:
		return bytes.Equal(v.scalar, []byte(`""`))
	}
	return false
}

// Parse decodes JSON into a tagged Value.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	// Reject trailing garbage after the first value.
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return fromAny(raw), nil
}

func fromAny(x any) *Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case map[string]any:
		v := NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		// encoding/json loses member order; sort for determinism
		sort.Strings(keys)
		for _, k := range keys {
			v.Set(k, fromAny(t[k]))
		}
		return v
	case []any:
		v := NewArray()
		for _, item := range t {
			v.Append(fromAny(item))
		}
		return v
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return Null()
		}
		return &Value{kind: KindScalar, scalar: b}
	}
}

// Interface converts back to plain Go values (map[string]any / []any /
// scalars), mainly for schema validation and tests.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, member := range v.obj {
			out[k] = member.Interface()
		}
		return out
	case KindArray:
		out := make([]any, 0, len(v.arr))
		for _, item := range v.arr {
			out = append(out, item.Interface())
		}
		return out
	default:
		var x any
		dec := json.NewDecoder(bytes.NewReader(v.scalar))
		dec.UseNumber()
		if err := dec.Decode(&x); err != nil {
			return nil
		}
		return x
	}
}

// MarshalJSON serializes the value, objects in insertion order.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindScalar:
		return v.scalar, nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			b, err := json.Marshal(v.obj[k])
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}
