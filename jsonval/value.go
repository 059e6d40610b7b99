// Package jsonval provides a closed recursive representation of arbitrary JSON
// values. It backs the forward-compatible "other" payment variants, which carry
// opaque payloads whose shape the client cannot know ahead of time.
package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the concrete variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one JSON value: Null | Bool | Int | Float | String | Array | Object.
// The zero value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  Object
}

// Object is a string-keyed collection of Values.
type Object map[string]Value

// Constructors.
func Null() Value               { return Value{kind: KindNull} }
func Bool(v bool) Value         { return Value{kind: KindBool, b: v} }
func Int(v int64) Value         { return Value{kind: KindInt, i: v} }
func Float(v float64) Value     { return Value{kind: KindFloat, f: v} }
func String(v string) Value     { return Value{kind: KindString, s: v} }
func Array(vs ...Value) Value   { return Value{kind: KindArray, arr: vs} }
func FromObject(o Object) Value { return Value{kind: KindObject, obj: o} }

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Accessors report the held value and whether the kind matched.
func (v Value) BoolValue() (bool, bool)      { return v.b, v.kind == KindBool }
func (v Value) IntValue() (int64, bool)      { return v.i, v.kind == KindInt }
func (v Value) FloatValue() (float64, bool)  { return v.f, v.kind == KindFloat }
func (v Value) StringValue() (string, bool)  { return v.s, v.kind == KindString }
func (v Value) ArrayValue() ([]Value, bool)  { return v.arr, v.kind == KindArray }
func (v Value) ObjectValue() (Object, bool)  { return v.obj, v.kind == KindObject }

// Decode parses a raw JSON fragment into a Value. Per leaf it attempts
// bool, string, int, float, object, array, then null, in exactly that order:
// a field that parses as an integer must never be captured as a float, and a
// boolean must never be captured as a string.
func Decode(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{}, fmt.Errorf("jsonval: empty fragment")
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return Bool(b), nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return String(s), nil
	}

	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		return Int(i), nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return Float(f), nil
	}

	var rawObj map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawObj); err == nil {
		obj := make(Object, len(rawObj))
		for key, raw := range rawObj {
			v, err := Decode(raw)
			if err != nil {
				return Value{}, fmt.Errorf("jsonval: key %q: %w", key, err)
			}
			obj[key] = v
		}
		return FromObject(obj), nil
	}

	var rawArr []json.RawMessage
	if err := json.Unmarshal(data, &rawArr); err == nil {
		arr := make([]Value, 0, len(rawArr))
		for idx, raw := range rawArr {
			v, err := Decode(raw)
			if err != nil {
				return Value{}, fmt.Errorf("jsonval: index %d: %w", idx, err)
			}
			arr = append(arr, v)
		}
		return Array(arr...), nil
	}

	if bytes.Equal(data, []byte("null")) {
		return Null(), nil
	}

	return Value{}, fmt.Errorf("jsonval: unsupported fragment %q", string(data))
}

// DecodeObject parses a raw JSON object fragment into an Object.
func DecodeObject(data []byte) (Object, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.ObjectValue()
	if !ok {
		return nil, fmt.Errorf("jsonval: expected object, got %s", v.Kind())
	}
	return obj, nil
}

// MarshalJSON emits the plain JSON form of the value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	default:
		return nil, fmt.Errorf("jsonval: cannot marshal %s", v.kind)
	}
}

// UnmarshalJSON decodes using the same ordered attempts as Decode.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	default:
		return false
	}
}

// Equal compares two objects structurally.
func (o Object) Equal(other Object) bool {
	if len(o) != len(other) {
		return false
	}
	for key, v := range o {
		ov, ok := other[key]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// SameKeys reports whether two objects share the same key set, ignoring
// values. Forward-compatible payloads are opaque blobs, so decode round trips
// compare key sets rather than contents.
func (o Object) SameKeys(other Object) bool {
	if len(o) != len(other) {
		return false
	}
	for key := range o {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the object's keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
