package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Input is the request payload. Keys keep their insertion order, which
// is the order the default pass walks them in.
type Input struct {
	keys   []string
	values map[string]Value
}

// NewInput builds an Input from pairs of key and value, in order.
func NewInput(pairs ...KV) Input {
	var in Input
	for _, p := range pairs {
		in.Set(p.Key, p.Value)
	}
	return in
}

type KV struct {
	Key   string
	Value Value
}

// FromMap converts a decoded payload. Keys are sorted because map
// iteration order is random.
func FromMap(m map[string]any) (Input, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var in Input
	for _, k := range keys {
		v, err := ValueOf(m[k])
		if err != nil {
			return Input{}, fmt.Errorf("filter: key %q: %w", k, err)
		}
		in.Set(k, v)
	}
	return in, nil
}

// FromValues converts a query string. A key given more than once, or
// written as "key[]", becomes a list.
func FromValues(vals url.Values) Input {
	type entry struct {
		items []Value
		list  bool
	}
	raw := make([]string, 0, len(vals))
	for k := range vals {
		raw = append(raw, k)
	}
	// "key" sorts before "key[]", so merged lists keep a stable order
	sort.Strings(raw)
	entries := make(map[string]*entry, len(vals))
	for _, k := range raw {
		vs := vals[k]
		name := strings.TrimSuffix(k, "[]")
		e, ok := entries[name]
		if !ok {
			e = &entry{}
			entries[name] = e
		}
		if name != k || len(vs) > 1 {
			e.list = true
		}
		for _, v := range vs {
			e.items = append(e.items, String(v))
		}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var in Input
	for _, k := range keys {
		e := entries[k]
		if !e.list && len(e.items) == 1 {
			in.Set(k, e.items[0])
			continue
		}
		// "a" and "a[]" together also end up here
		in.Set(k, List(e.items...))
	}
	return in
}

// Set keeps the position of the first Set for a key.
func (in *Input) Set(key string, v Value) {
	if in.values == nil {
		in.values = make(map[string]Value, 8)
	}
	if _, ok := in.values[key]; !ok {
		in.keys = append(in.keys, key)
	}
	in.values[key] = v
}

func (in Input) Get(key string) (Value, bool) {
	v, ok := in.values[key]
	return v, ok
}

func (in Input) Has(key string) bool {
	_, ok := in.values[key]
	return ok
}

func (in Input) Keys() []string {
	res := make([]string, len(in.keys))
	copy(res, in.keys)
	return res
}

func (in Input) Len() int { return len(in.keys) }

// UnmarshalJSON decodes a JSON object keeping document order.
func (in *Input) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("filter: input must be a JSON object, got %v", tok)
	}
	res := Input{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		v, err := decodeValue(dec, true)
		if err != nil {
			return fmt.Errorf("filter: key %q: %w", key, err)
		}
		res.Set(key, v)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*in = res
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range in.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(in.values[k].Interface())
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeValue(dec *json.Decoder, top bool) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case json.Delim:
		if t != '[' || !top {
			return Value{}, fmt.Errorf("%w: nested %v", ErrUnsupportedValue, t)
		}
		items := make([]Value, 0, 4)
		for dec.More() {
			it, err := decodeValue(dec, false)
			if err != nil {
				return Value{}, err
			}
			items = append(items, it)
		}
		// ']'
		if _, err = dec.Token(); err != nil {
			return Value{}, err
		}
		return List(items...), nil
	}
	return Value{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, tok)
}
