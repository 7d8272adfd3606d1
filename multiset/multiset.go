// Package multiset implements a multiset (also known as a bag): a
// set in which each value may occur more than once.
//
// Each distinct value is stored once in a [hashtable.Table] together
// with its multiplicity. The total number of occurrences is the
// multiset's cardinality.
package multiset

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/hashcoll/hashtable"
)

// Multiset holds values of type T with multiplicities.
//
// A nil *Multiset is a valid empty multiset for read-only
// operations.
type Multiset[T any] struct {
	t    *hashtable.Table[T, int]
	card int
}

// New returns a multiset with room for capacity distinct values
// before it needs to grow. See [hashtable.New] for the meaning of
// the arguments and the errors returned.
func New[T any](capacity int, load float64, h hashtable.Hasher[T]) (*Multiset[T], error) {
	t, err := hashtable.New[T, int](capacity, load, h)
	if err != nil {
		return nil, err
	}
	return &Multiset[T]{t: t}, nil
}

// Insert adds one occurrence of x.
func (m *Multiset[T]) Insert(x T) error {
	return m.InsertMany(x, 1)
}

// InsertMany adds n occurrences of x. It panics if n is negative.
func (m *Multiset[T]) InsertMany(x T, n int) error {
	if n < 0 {
		panic(fmt.Sprintf("multiset: InsertMany called with negative count %d", n))
	}
	if n == 0 {
		return nil
	}
	p, _, err := m.t.Upsert(x)
	if err != nil {
		return err
	}
	*p += n
	m.card += n
	return nil
}

// Update sets the multiplicity of x to n. Setting it to zero removes
// x altogether. It panics if n is negative.
func (m *Multiset[T]) Update(x T, n int) error {
	if n < 0 {
		panic(fmt.Sprintf("multiset: Update called with negative count %d", n))
	}
	if n == 0 {
		m.RemoveAll(x)
		return nil
	}
	p, _, err := m.t.Upsert(x)
	if err != nil {
		return err
	}
	m.card += n - *p
	*p = n
	return nil
}

// Remove removes one occurrence of x and reports whether x was
// present.
func (m *Multiset[T]) Remove(x T) bool {
	p, ok := m.t.Lookup(x)
	if !ok {
		return false
	}
	*p--
	m.card--
	if *p == 0 {
		m.t.Delete(x)
	}
	return true
}

// RemoveAll removes every occurrence of x, returning how many there
// were.
func (m *Multiset[T]) RemoveAll(x T) int {
	_, n, ok := m.t.Delete(x)
	if !ok {
		return 0
	}
	m.card -= n
	return n
}

// Multiplicity returns the number of occurrences of x.
func (m *Multiset[T]) Multiplicity(x T) int {
	if m == nil {
		return 0
	}
	p, ok := m.t.Lookup(x)
	if !ok {
		return 0
	}
	return *p
}

// Contains reports whether x occurs at least once.
func (m *Multiset[T]) Contains(x T) bool {
	return m != nil && m.t.Contains(x)
}

// Min returns the smallest value and its multiplicity.
func (m *Multiset[T]) Min() (T, int, bool) {
	if m == nil {
		return *new(T), 0, false
	}
	return m.t.Min()
}

// Max returns the largest value and its multiplicity.
func (m *Multiset[T]) Max() (T, int, bool) {
	if m == nil {
		return *new(T), 0, false
	}
	return m.t.Max()
}

// Len returns the number of distinct values.
func (m *Multiset[T]) Len() int {
	if m == nil {
		return 0
	}
	return m.t.Len()
}

// Cardinality returns the total number of occurrences of all values.
func (m *Multiset[T]) Cardinality() int {
	if m == nil {
		return 0
	}
	return m.card
}

// Cap returns the number of slots in the underlying table.
func (m *Multiset[T]) Cap() int {
	if m == nil {
		return 0
	}
	return m.t.Cap()
}

// Load returns the multiset's load factor.
func (m *Multiset[T]) Load() float64 {
	if m == nil {
		return 0
	}
	return m.t.Load()
}

// Clear removes every value.
func (m *Multiset[T]) Clear() {
	m.t.Clear()
	m.card = 0
}

// Release removes every value and frees the storage.
func (m *Multiset[T]) Release() {
	m.t.Release()
	m.card = 0
}

// Resize rebuilds the multiset with room for n distinct values.
func (m *Multiset[T]) Resize(n int) error {
	return m.t.Resize(n)
}

// Clone returns a copy of m.
func (m *Multiset[T]) Clone() *Multiset[T] {
	if m == nil {
		return nil
	}
	return &Multiset[T]{
		t:    m.t.Clone(),
		card: m.card,
	}
}

// Equal reports whether m and m1 hold the same values with the same
// multiplicities.
func (m *Multiset[T]) Equal(m1 *Multiset[T]) bool {
	if m.Len() != m1.Len() || m.Cardinality() != m1.Cardinality() {
		return false
	}
	for x, n := range m.All() {
		if m1.Multiplicity(x) != n {
			return false
		}
	}
	return true
}

// All returns an iterator over each distinct value and its
// multiplicity.
func (m *Multiset[T]) All() iter.Seq2[T, int] {
	if m == nil {
		return func(func(T, int) bool) {}
	}
	return m.t.All()
}

// Iterator is a bidirectional cursor over a multiset. Navigation
// methods are those of [hashtable.Iterator].
type Iterator[T any] struct {
	*hashtable.Iterator[T, int]
}

// Iter returns an iterator positioned at the first value.
func (m *Multiset[T]) Iter() Iterator[T] {
	return Iterator[T]{m.table().Iter()}
}

// IterEnd returns an iterator positioned at the last value.
func (m *Multiset[T]) IterEnd() Iterator[T] {
	return Iterator[T]{m.table().IterEnd()}
}

func (m *Multiset[T]) table() *hashtable.Table[T, int] {
	if m == nil {
		return nil
	}
	return m.t
}

// Value returns the current value. It returns false if the multiset
// is empty.
func (it Iterator[T]) Value() (T, bool) {
	return it.Key()
}

// Multiplicity returns the multiplicity of the current value, or
// zero if the multiset is empty.
func (it Iterator[T]) Multiplicity() int {
	n, _ := it.Payload()
	return n
}
