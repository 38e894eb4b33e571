package casestr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStore(t *testing.T) {
	var m Map[int]
	m.Store(New("Key"), 1)
	m.Store(New("KEY"), 2)
	require.Equal(t, 1, m.Len())

	v, ok := m.Load(New("kEy"))
	require.True(t, ok)
	assert.Equal(t, 2, v)

	keys := m.Keys()
	require.Len(t, keys, 1)
	// The first casing stored is the one kept.
	assert.Equal(t, "Key", keys[0].String())
}

func TestMapLoadMissing(t *testing.T) {
	var m Map[string]
	v, ok := m.Load(New("nope"))
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestMapDelete(t *testing.T) {
	var m Map[int]
	m.Store(New("Content-Type"), 1)
	m.Delete(New("CONTENT-TYPE"))
	assert.Equal(t, 0, m.Len())

	// Deleting from the zero value is a no-op.
	var zero Map[int]
	zero.Delete(New("x"))
}

func TestMapKeysSorted(t *testing.T) {
	var m Map[struct{}]
	for _, k := range []string{"b", "A", "C"} {
		m.Store(New(k), struct{}{})
	}
	keys := m.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "A", keys[0].String())
	assert.Equal(t, "b", keys[1].String())
	assert.Equal(t, "C", keys[2].String())
}

func TestMapRange(t *testing.T) {
	var m Map[int]
	m.Store(New("One"), 1)
	m.Store(New("Two"), 2)

	sum := 0
	m.Range(func(key String, value int) bool {
		assert.False(t, key.IsEmpty())
		sum += value
		return true
	})
	assert.Equal(t, 3, sum)

	n := 0
	m.Range(func(String, int) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}

func TestSet(t *testing.T) {
	var s Set
	assert.True(t, s.Add(New("Key")))
	assert.False(t, s.Add(New("KEY")))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(New("key")))
	assert.False(t, s.Contains(New("other")))

	vals := s.Values()
	require.Len(t, vals, 1)
	assert.Equal(t, "Key", vals[0].String())

	s.Delete(New("kEy"))
	assert.Equal(t, 0, s.Len())
}
