package casestr

import "golang.org/x/exp/slices"

// Map is a map keyed by case-insensitive strings: keys that are equal
// under Equal address the same entry. The stored key keeps the casing
// it had when its entry was first created. The zero value is an empty
// map ready for use.
type Map[V any] struct {
	m map[string]mapEntry[V]
}

type mapEntry[V any] struct {
	key String
	val V
}

// Store sets the value for key. If an entry already exists for a
// case-insensitive match of key, its value is replaced and the casing
// of the existing key is kept.
func (m *Map[V]) Store(key String, value V) {
	if m.m == nil {
		m.m = make(map[string]mapEntry[V])
	}
	k := key.Fold()
	if e, ok := m.m[k]; ok {
		e.val = value
		m.m[k] = e
		return
	}
	m.m[k] = mapEntry[V]{key: key, val: value}
}

// Load returns the value stored for key and whether an entry exists.
func (m *Map[V]) Load(key String) (value V, ok bool) {
	e, ok := m.m[key.Fold()]
	return e.val, ok
}

// Delete removes the entry for key, if any.
func (m *Map[V]) Delete(key String) {
	delete(m.m, key.Fold())
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return len(m.m) }

// Keys returns the stored keys sorted by their case folded forms.
func (m *Map[V]) Keys() []String {
	keys := make([]String, 0, len(m.m))
	for _, e := range m.m {
		keys = append(keys, e.key)
	}
	slices.SortFunc(keys, func(a, b String) int { return a.Compare(b) })
	return keys
}

// Range calls f for each entry until f returns false. Iteration order
// is unspecified.
func (m *Map[V]) Range(f func(key String, value V) bool) {
	for _, e := range m.m {
		if !f(e.key, e.val) {
			return
		}
	}
}

// Set is a set of case-insensitive strings. The zero value is an empty
// set ready for use.
type Set struct {
	m Map[struct{}]
}

// Add inserts v and reports whether it was absent. The casing of the
// first string added is the one kept.
func (s *Set) Add(v String) bool {
	if _, ok := s.m.Load(v); ok {
		return false
	}
	s.m.Store(v, struct{}{})
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v String) bool {
	_, ok := s.m.Load(v)
	return ok
}

// Delete removes v from the set, if present.
func (s *Set) Delete(v String) { s.m.Delete(v) }

// Len returns the number of elements.
func (s *Set) Len() int { return s.m.Len() }

// Values returns the stored strings sorted by their case folded forms.
func (s *Set) Values() []String { return s.m.Keys() }
