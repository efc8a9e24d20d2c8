package manifest

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is a JSON object that remembers the order its keys appeared in.
// Mappings returned by Decode are read-only.
type Mapping struct {
	pairs *orderedmap.OrderedMap[string, Value]
}

func newMapping() *Mapping {
	return &Mapping{pairs: orderedmap.New[string, Value]()}
}

// set stores v under key. A repeated key keeps its first position and takes
// the new value.
func (m *Mapping) set(key string, v Value) {
	m.pairs.Set(key, v)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	return m.pairs.Get(key)
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return m.pairs.Len()
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	_ = m.Each(func(key string, _ Value) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}

// Each calls fn for every entry in document order and stops at the first error.
func (m *Mapping) Each(fn func(key string, v Value) error) error {
	if m == nil {
		return nil
	}
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
