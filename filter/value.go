package filter

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	// KindList is an ordered sequence of scalars.
	KindList
	// KindRecord only appears as the result of CastObject.
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a request value. The zero Value is null.
type Value struct {
	kind   Kind
	s      string
	i      int64
	f      float64
	b      bool
	items  []Value
	fields map[string]Value
}

func Null() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, s: s} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List panics when an item is not a scalar.
func List(items ...Value) Value {
	for _, it := range items {
		if !it.IsScalar() {
			panic("filter: list items must be scalars, got " + it.kind.String())
		}
	}
	return Value{kind: KindList, items: items}
}

func Record(fields map[string]Value) Value {
	return Value{kind: KindRecord, fields: fields}
}

// ValueOf converts a native Go value into a Value.
// Supported: nil, string, bool, all integer and float kinds,
// and slices or arrays of those.
func ValueOf(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return val, nil
	}
	if v == nil {
		return Null(), nil
	}
	if b, ok := v.([]byte); ok {
		return String(string(b)), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			it, err := scalarOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			items = append(items, it)
		}
		return Value{kind: KindList, items: items}, nil
	}
	return scalarOf(v)
}

func scalarOf(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		if !val.IsScalar() {
			return Value{}, fmt.Errorf("%w: nested %s", ErrUnsupportedValue, val.kind)
		}
		return val, nil
	}
	if v == nil {
		return Null(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// IsCollection reports whether the value takes the collection path
// through the resolver.
func (v Value) IsCollection() bool { return v.kind == KindList }

func (v Value) IsScalar() bool {
	return v.kind <= KindBool
}

// Items returns the list items, nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	res := make([]Value, len(v.items))
	copy(res, v.items)
	return res
}

// Field returns a record field.
func (v Value) Field(name string) (Value, bool) {
	f, ok := v.fields[name]
	return f, ok
}

// Interface returns the native Go value: nil, string, int64, float64,
// bool, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindList:
		res := make([]any, 0, len(v.items))
		for _, it := range v.items {
			res = append(res, it.Interface())
		}
		return res
	case KindRecord:
		res := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			res[k] = f.Interface()
		}
		return res
	}
	return nil
}

// Interfaces returns the list items as native values. A scalar is
// returned as a single item.
func (v Value) Interfaces() []any {
	if v.kind == KindList {
		return v.Interface().([]any)
	}
	return []any{v.Interface()}
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.s)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, 0, len(v.items))
		for _, it := range v.items {
			parts = append(parts, it.String())
		}
		return "[" + strings.Join(parts, ",") + "]"
	case KindRecord:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, strconv.Quote(k)+":"+v.fields[k].String())
		}
		return "{" + strings.Join(parts, ",") + "}"
	}
	return v.kind.String()
}
