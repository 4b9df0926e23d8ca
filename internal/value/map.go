package value

import (
	"iter"
	"slices"
)

// Pair is one map entry.
type Pair struct {
	Key   Value
	Value Value
}

// Map is a Sass map: an insertion-ordered association list. Keys are
// compared with Equal, so 1 and 1.0, or 1in and 96px, are the same key.
// The zero Map is empty and ready to use.
type Map struct {
	pairs []Pair
}

// NewMap builds a map from pairs, later duplicates overwriting earlier ones.
func NewMap(pairs ...Pair) *Map {
	m := &Map{pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

func (m *Map) index(key Value) int {
	if m == nil {
		return -1
	}
	for i, p := range m.pairs {
		if Equal(p.Key, key) {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (m *Map) Get(key Value) (Value, bool) {
	if i := m.index(key); i >= 0 {
		return m.pairs[i].Value, true
	}
	return nil, false
}

// Has reports whether key is present.
func (m *Map) Has(key Value) bool {
	return m.index(key) >= 0
}

// Insert stores v under key, overwriting the value of an equal key in place.
// It reports whether the key already existed.
func (m *Map) Insert(key, v Value) bool {
	if i := m.index(key); i >= 0 {
		m.pairs[i].Value = v
		return true
	}
	m.pairs = append(m.pairs, Pair{Key: key, Value: v})
	return false
}

// Remove deletes key if present.
func (m *Map) Remove(key Value) {
	if i := m.index(key); i >= 0 {
		m.pairs = slices.Delete(m.pairs, i, i+1)
	}
}

// Merge inserts every entry of o into m, in o's order.
func (m *Map) Merge(o *Map) {
	if o == nil {
		return
	}
	for _, p := range o.pairs {
		m.Insert(p.Key, p.Value)
	}
}

// Clone returns a shallow copy that can be modified independently.
func (m *Map) Clone() *Map {
	if m == nil {
		return &Map{}
	}
	return &Map{pairs: slices.Clone(m.pairs)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Value {
	keys := make([]Value, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in insertion order.
func (m *Map) Values() []Value {
	values := make([]Value, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns a copy of the pairs.
func (m *Map) Entries() []Pair {
	if m == nil {
		return nil
	}
	return slices.Clone(m.pairs)
}

// AsList returns each entry as a two-element space-separated list.
func (m *Map) AsList() []Value {
	list := make([]Value, 0, m.Len())
	for k, v := range m.All() {
		list = append(list, NewList(Space, k, v))
	}
	return list
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
