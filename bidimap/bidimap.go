// Package bidimap implements a one-to-one mapping that can be
// queried in both directions.
//
// A Map holds two tables, one from keys to values and one from
// values to keys, and every mutation keeps them in step. Keys and
// values are both unique: no two pairs share a key, and no two pairs
// share a value.
package bidimap

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/hashcoll/hashtable"
)

// Map is a bidirectional map between keys of type K and values of
// type V.
type Map[K, V any] struct {
	fwd *hashtable.Table[K, V]
	rev *hashtable.Table[V, K]
}

// New returns a map with room for capacity pairs before it needs
// to grow, hashing keys with kh and values with vh.
func New[K, V any](capacity int, load float64, kh hashtable.Hasher[K], vh hashtable.Hasher[V]) (*Map[K, V], error) {
	fwd, err := hashtable.New[K, V](capacity, load, kh)
	if err != nil {
		return nil, err
	}
	rev, err := hashtable.New[V, K](capacity, load, vh)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{
		fwd: fwd,
		rev: rev,
	}, nil
}

// Insert adds the pair (k, v). It returns false, leaving the map
// unchanged, if k or v is already present.
func (m *Map[K, V]) Insert(k K, v V) (bool, error) {
	if m.fwd.Contains(k) || m.rev.Contains(v) {
		return false, nil
	}
	if _, err := m.fwd.Insert(k, v); err != nil {
		return false, err
	}
	if _, err := m.rev.Insert(v, k); err != nil {
		m.fwd.Delete(k)
		return false, err
	}
	return true, nil
}

// UpdateKey changes the key paired with v to k. It returns false if
// v is not present or k is already paired with a different value.
func (m *Map[K, V]) UpdateKey(v V, k K) (bool, error) {
	p, ok := m.rev.Lookup(v)
	if !ok {
		return false, nil
	}
	old := *p
	if m.fwd.Hasher().Compare(old, k) == 0 {
		return true, nil
	}
	if inserted, err := m.fwd.Insert(k, v); !inserted {
		return false, err
	}
	m.fwd.Delete(old)
	*p = k
	return true, nil
}

// UpdateValue changes the value paired with k to v. It returns false
// if k is not present or v is already paired with a different key.
func (m *Map[K, V]) UpdateValue(k K, v V) (bool, error) {
	p, ok := m.fwd.Lookup(k)
	if !ok {
		return false, nil
	}
	old := *p
	if m.rev.Hasher().Compare(old, v) == 0 {
		return true, nil
	}
	if inserted, err := m.rev.Insert(v, k); !inserted {
		return false, err
	}
	m.rev.Delete(old)
	*p = v
	return true, nil
}

// RemoveByKey removes the pair with key k, returning it. It reports
// whether such a pair was present.
func (m *Map[K, V]) RemoveByKey(k K) (K, V, bool) {
	k, v, ok := m.fwd.Delete(k)
	if ok {
		m.rev.Delete(v)
	}
	return k, v, ok
}

// RemoveByValue removes the pair with value v, returning it. It
// reports whether such a pair was present.
func (m *Map[K, V]) RemoveByValue(v V) (K, V, bool) {
	v, k, ok := m.rev.Delete(v)
	if ok {
		m.fwd.Delete(k)
	}
	return k, v, ok
}

// Value returns the value paired with k.
func (m *Map[K, V]) Value(k K) (V, bool) {
	_, v, ok := m.fwd.Get(k)
	return v, ok
}

// Key returns the key paired with v.
func (m *Map[K, V]) Key(v V) (K, bool) {
	_, k, ok := m.rev.Get(v)
	return k, ok
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool {
	return m.fwd.Contains(k)
}

// ContainsValue reports whether v is present.
func (m *Map[K, V]) ContainsValue(v V) bool {
	return m.rev.Contains(v)
}

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int {
	return m.fwd.Len()
}

// Cap returns the number of slots in the key table. The value table
// grows independently when pairs are inserted, so its capacity can
// differ after a failed insertion.
func (m *Map[K, V]) Cap() int {
	return m.fwd.Cap()
}

// Load returns the map's load factor.
func (m *Map[K, V]) Load() float64 {
	return m.fwd.Load()
}

// Clear removes all pairs.
func (m *Map[K, V]) Clear() {
	m.fwd.Clear()
	m.rev.Clear()
}

// Resize grows both tables so that they have room for n pairs.
// If either table cannot be grown, neither is changed.
func (m *Map[K, V]) Resize(n int) error {
	rev := m.rev.Clone()
	if err := rev.Resize(n); err != nil {
		return err
	}
	if err := m.fwd.Resize(n); err != nil {
		return err
	}
	m.rev = rev
	return nil
}

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		fwd: m.fwd.Clone(),
		rev: m.rev.Clone(),
	}
}

// Equal reports whether m and m1 hold the same pairs.
func (m *Map[K, V]) Equal(m1 *Map[K, V]) bool {
	if m.Len() != m1.Len() {
		return false
	}
	vh := m.rev.Hasher()
	for k, v := range m.All() {
		v1, ok := m1.Value(k)
		if !ok || vh.Compare(v, v1) != 0 {
			return false
		}
	}
	return true
}

// All returns an iterator over all the pairs in the map.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.fwd.All()
}

// Verify checks that both tables are internally consistent and
// that they hold the same pairs.
func (m *Map[K, V]) Verify() error {
	if err := m.fwd.Verify(); err != nil {
		return fmt.Errorf("key table: %v", err)
	}
	if err := m.rev.Verify(); err != nil {
		return fmt.Errorf("value table: %v", err)
	}
	if m.fwd.Len() != m.rev.Len() {
		return fmt.Errorf("%d keys but %d values", m.fwd.Len(), m.rev.Len())
	}
	kh := m.fwd.Hasher()
	for k, v := range m.fwd.All() {
		k1, ok := m.Key(v)
		if !ok {
			return fmt.Errorf("value of key %v missing from value table", k)
		}
		if kh.Compare(k, k1) != 0 {
			return fmt.Errorf("value of key %v maps back to %v", k, k1)
		}
	}
	return nil
}
