// Package schema normalizes a loaded API schema document into an ordered
// catalog of entities and their fields.
package schema

// Mapping is a string-keyed map that remembers insertion order.
// Values are *Mapping, []any, or decoded scalars (string, int, bool, nil, ...).
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// String returns the value under key when it is a string.
func (m *Mapping) String(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

// Mapping returns the value under key when it is itself a Mapping.
func (m *Mapping) Mapping(key string) (*Mapping, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Mapping)
	return child, ok
}

// Lookup walks a path of nested mappings.
func (m *Mapping) Lookup(path ...string) (*Mapping, bool) {
	cur := m
	for _, key := range path {
		next, ok := cur.Mapping(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
