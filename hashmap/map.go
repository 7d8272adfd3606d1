// Package hashmap provides a map from keys to values built on the
// robin-hood table in package hashtable.
//
// Unlike a built-in Go map, keys need not be comparable: equality and
// hashing come from a [hashtable.Hasher], and iteration can run in
// either direction.
package hashmap

import (
	"iter"

	"github.com/rogpeppe/hashcoll/hashtable"
)

// Map maps keys of type K to values of type V.
//
// Just as with map[K]V, a nil *Map is a valid empty map
// for read-only operations.
type Map[K, V any] struct {
	t *hashtable.Table[K, V]
}

// New returns a map with room for capacity entries before it
// needs to grow. See [hashtable.New] for the meaning of the
// arguments and the errors returned.
func New[K, V any](capacity int, load float64, h hashtable.Hasher[K]) (*Map[K, V], error) {
	t, err := hashtable.New[K, V](capacity, load, h)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{t: t}, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.t.Len()
}

// Cap returns the number of slots in the underlying table.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	return m.t.Cap()
}

// Load returns the map's load factor.
func (m *Map[K, V]) Load() float64 {
	if m == nil {
		return 0
	}
	return m.t.Load()
}

// Insert adds an entry mapping k to v. If k is already present,
// Insert returns false and the stored value is left unchanged.
func (m *Map[K, V]) Insert(k K, v V) (bool, error) {
	return m.t.Insert(k, v)
}

// Update replaces the value of an existing key, returning the old
// value. If k is not present, Update does nothing and returns false.
func (m *Map[K, V]) Update(k K, v V) (old V, ok bool) {
	p, ok := m.t.Lookup(k)
	if !ok {
		return old, false
	}
	old, *p = *p, v
	return old, true
}

// Set sets the value for k to v, returning the previous value
// and whether there was one.
func (m *Map[K, V]) Set(k K, v V) (old V, existed bool, err error) {
	p, inserted, err := m.t.Upsert(k)
	if err != nil {
		return old, false, err
	}
	old, *p = *p, v
	return old, !inserted, nil
}

// Remove removes k from the map, returning its value. It reports
// whether k was present.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	if m == nil {
		return *new(V), false
	}
	_, v, ok := m.t.Delete(k)
	return v, ok
}

// Get returns the value for k and reports whether k was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		return *new(V), false
	}
	_, v, ok := m.t.Get(k)
	return v, ok
}

// GetRef returns a pointer to the value for k, or nil if k is not
// present. The pointer is only valid until the map is next
// modified.
func (m *Map[K, V]) GetRef(k K) *V {
	if m == nil {
		return nil
	}
	p, _ := m.t.Lookup(k)
	return p
}

// Contains reports whether k is present in the map.
func (m *Map[K, V]) Contains(k K) bool {
	return m != nil && m.t.Contains(k)
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m == nil {
		return *new(K), *new(V), false
	}
	return m.t.Min()
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m == nil {
		return *new(K), *new(V), false
	}
	return m.t.Max()
}

// SetReleaseFunc sets a function to be called on every entry
// discarded by Clear or Release.
func (m *Map[K, V]) SetReleaseFunc(f func(K, V)) {
	m.t.SetReleaseFunc(f)
}

// Clear removes all entries from the map, retaining its capacity.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Release removes all entries from the map and frees its storage.
func (m *Map[K, V]) Release() {
	m.t.Release()
}

// Resize rebuilds the map with room for n entries.
func (m *Map[K, V]) Resize(n int) error {
	return m.t.Resize(n)
}

// Clone returns a copy of m. Keys and values are copied by
// assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	return &Map[K, V]{t: m.t.Clone()}
}

// Equal reports whether m and m1 hold the same keys, with values
// that are equal according to eq.
func (m *Map[K, V]) Equal(m1 *Map[K, V], eq func(V, V) bool) bool {
	if m.Len() != m1.Len() {
		return false
	}
	for k, v := range m.All() {
		v1, ok := m1.Get(k)
		if !ok || !eq(v, v1) {
			return false
		}
	}
	return true
}

// All returns an iterator over all the entries in the map.
// The order is unspecified but stable while the map is unmodified.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.t.All()
}

// Keys returns an iterator over all the keys in the map.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all the values in the map.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Stats returns statistics about the layout of the underlying table.
func (m *Map[K, V]) Stats() hashtable.Stats {
	if m == nil {
		return hashtable.Stats{}
	}
	return m.t.Stats()
}

// Verify checks the structural invariants of the underlying table.
func (m *Map[K, V]) Verify() error {
	if m == nil {
		return nil
	}
	return m.t.Verify()
}

// Iterator is a bidirectional cursor over a map. Navigation methods
// are those of [hashtable.Iterator].
type Iterator[K, V any] struct {
	*hashtable.Iterator[K, V]
}

// Iter returns an iterator positioned at the first entry.
func (m *Map[K, V]) Iter() Iterator[K, V] {
	return Iterator[K, V]{m.table().Iter()}
}

// IterEnd returns an iterator positioned at the last entry.
func (m *Map[K, V]) IterEnd() Iterator[K, V] {
	return Iterator[K, V]{m.table().IterEnd()}
}

func (m *Map[K, V]) table() *hashtable.Table[K, V] {
	if m == nil {
		return nil
	}
	return m.t
}

// Value returns the value of the current entry. It returns false
// if the map is empty.
func (it Iterator[K, V]) Value() (V, bool) {
	return it.Payload()
}

// ValueRef returns a pointer to the value of the current entry,
// or nil if the map is empty.
func (it Iterator[K, V]) ValueRef() *V {
	return it.PayloadRef()
}
