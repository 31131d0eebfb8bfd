package record

import (
	"math"
	"reflect"
	"sort"
)

// Entry is a single key-value pair in a Record.
type Entry struct {
	Key   string
	Value any
}

// Record is an ordered JSON object. Keys keep their insertion order, which is
// the order the editor shows and the order serialization reproduces.
//
// Values are nil, bool, float64, string, Record or []any. A Record is never
// modified in place once built: Set and Delete return a new Record when they
// change anything, so values may be shared freely between records.
type Record []Entry

// Len returns the number of entries.
func (r Record) Len() int {
	return len(r)
}

// Keys returns the keys in order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, e := range r {
		keys = append(keys, e.Key)
	}
	return keys
}

func (r Record) index(key string) int {
	for i, e := range r {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	if i := r.index(key); i >= 0 {
		return r[i].Value, true
	}
	return nil, false
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	return r.index(key) >= 0
}

// Set stores v under key. An existing key keeps its position; a new key is
// appended. The receiver is never modified.
func (r Record) Set(key string, v any) Record {
	if i := r.index(key); i >= 0 {
		out := make(Record, len(r))
		copy(out, r)
		out[i].Value = v
		return out
	}
	// Full slice expression forces a copy when r has spare capacity.
	return append(r[:len(r):len(r)], Entry{Key: key, Value: v})
}

// Delete removes key, returning the receiver unchanged if it is absent.
func (r Record) Delete(key string) Record {
	i := r.index(key)
	if i < 0 {
		return r
	}
	out := make(Record, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}

// Equal reports whether both records hold the same keys in the same order
// with deeply equal values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i].Key != other[i].Key {
			return false
		}
		if !ValueEqual(r[i].Value, other[i].Value) {
			return false
		}
	}
	return true
}

// ValueEqual compares two normalized values. Records compare in order.
func ValueEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Record:
		bv, ok := b.(Record)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return false
		}
		return av == bv || (math.IsNaN(av) && math.IsNaN(bv))
	default:
		return a == b
	}
}

// Map converts r to a plain map, recursively. Order is lost.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, e := range r {
		m[e.Key] = plain(e.Value)
	}
	return m
}

func plain(v any) any {
	switch tv := v.(type) {
	case Record:
		return tv.Map()
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

// As returns v as a Record when it is an object. Maps are converted with
// their keys sorted, since a map carries no order of its own.
func As(v any) (Record, bool) {
	switch tv := v.(type) {
	case Record:
		return tv, true
	case map[string]any:
		return fromMap(tv), true
	default:
		return nil, false
	}
}

func fromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := make(Record, 0, len(keys))
	for _, k := range keys {
		r = append(r, Entry{Key: k, Value: Normalize(m[k])})
	}
	return r
}

// From builds a Record from any object-like value: a Record, a
// map[string]any, or nil (the empty record).
func From(v any) Record {
	if v == nil {
		return Record{}
	}
	if r, ok := As(v); ok {
		return normalizeRecord(r)
	}
	return Record{}
}

func normalizeRecord(r Record) Record {
	out := make(Record, len(r))
	for i, e := range r {
		out[i] = Entry{Key: e.Key, Value: Normalize(e.Value)}
	}
	return out
}

// Normalize converts Go values into the record value set: integer and float
// kinds become float64, maps become Records, and slices become []any.
// Anything else is returned unchanged.
func Normalize(v any) any {
	switch tv := v.(type) {
	case nil, bool, string, float64:
		return v
	case Record:
		return normalizeRecord(tv)
	case map[string]any:
		return fromMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = Normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32:
		return rv.Float()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}
