// Package hashset implements a set of values stored in a robin-hood
// hash table.
package hashset

import (
	"iter"

	"github.com/rogpeppe/hashcoll/hashtable"
)

// Set holds a set of values of type T.
//
// A nil *Set is a valid empty set for read-only operations.
type Set[T any] struct {
	t *hashtable.Table[T, struct{}]
}

// New returns a set with room for capacity values before it needs to
// grow. See [hashtable.New] for the meaning of the arguments and the
// errors returned.
func New[T any](capacity int, load float64, h hashtable.Hasher[T]) (*Set[T], error) {
	t, err := hashtable.New[T, struct{}](capacity, load, h)
	if err != nil {
		return nil, err
	}
	return &Set[T]{t: t}, nil
}

// Of returns a set holding the given values, sized to fit them.
func Of[T any](h hashtable.Hasher[T], xs ...T) (*Set[T], error) {
	s, err := New(max(len(xs), 1), 0.75, h)
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		if _, err := s.Insert(x); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert adds x to the set and reports whether it was not already
// present.
func (s *Set[T]) Insert(x T) (bool, error) {
	return s.t.Insert(x, struct{}{})
}

// Remove removes x from the set and reports whether it was present.
func (s *Set[T]) Remove(x T) bool {
	_, _, ok := s.t.Delete(x)
	return ok
}

// Contains reports whether x is in the set.
func (s *Set[T]) Contains(x T) bool {
	return s != nil && s.t.Contains(x)
}

// Min returns the smallest member of the set.
func (s *Set[T]) Min() (T, bool) {
	if s == nil {
		return *new(T), false
	}
	x, _, ok := s.t.Min()
	return x, ok
}

// Max returns the largest member of the set.
func (s *Set[T]) Max() (T, bool) {
	if s == nil {
		return *new(T), false
	}
	x, _, ok := s.t.Max()
	return x, ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.t.Len()
}

// Cap returns the number of slots in the underlying table.
func (s *Set[T]) Cap() int {
	if s == nil {
		return 0
	}
	return s.t.Cap()
}

// Load returns the set's load factor.
func (s *Set[T]) Load() float64 {
	if s == nil {
		return 0
	}
	return s.t.Load()
}

// Clear removes all members.
func (s *Set[T]) Clear() {
	s.t.Clear()
}

// Resize rebuilds the set with room for n members.
func (s *Set[T]) Resize(n int) error {
	return s.t.Resize(n)
}

// Clone returns a copy of s.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return nil
	}
	return &Set[T]{t: s.t.Clone()}
}

// Equal reports whether s and s1 have the same members.
func (s *Set[T]) Equal(s1 *Set[T]) bool {
	return s.Len() == s1.Len() && s.IsSubset(s1)
}

// All returns an iterator over all members of the set.
func (s *Set[T]) All() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}
	return s.t.Keys()
}

// Iterator is a bidirectional cursor over a set. Navigation methods
// are those of [hashtable.Iterator].
type Iterator[T any] struct {
	*hashtable.Iterator[T, struct{}]
}

// Iter returns an iterator positioned at the first member.
func (s *Set[T]) Iter() Iterator[T] {
	return Iterator[T]{s.table().Iter()}
}

// IterEnd returns an iterator positioned at the last member.
func (s *Set[T]) IterEnd() Iterator[T] {
	return Iterator[T]{s.table().IterEnd()}
}

func (s *Set[T]) table() *hashtable.Table[T, struct{}] {
	if s == nil {
		return nil
	}
	return s.t
}

// Value returns the current member. It returns false if the set is
// empty.
func (it Iterator[T]) Value() (T, bool) {
	return it.Key()
}

// Union returns a new set holding the members of both s and s1.
func (s *Set[T]) Union(s1 *Set[T]) (*Set[T], error) {
	r := s.Clone()
	for x := range s1.All() {
		if _, err := r.Insert(x); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Intersection returns a new set holding the members common to s
// and s1.
func (s *Set[T]) Intersection(s1 *Set[T]) (*Set[T], error) {
	return s.filter(min(s.Len(), s1.Len()), func(x T) bool {
		return s1.Contains(x)
	})
}

// Difference returns a new set holding the members of s that are
// not in s1.
func (s *Set[T]) Difference(s1 *Set[T]) (*Set[T], error) {
	return s.filter(s.Len(), func(x T) bool {
		return !s1.Contains(x)
	})
}

// SymmetricDifference returns a new set holding the members of
// exactly one of s and s1.
func (s *Set[T]) SymmetricDifference(s1 *Set[T]) (*Set[T], error) {
	r, err := s.filter(s.Len()+s1.Len(), func(x T) bool {
		return !s1.Contains(x)
	})
	if err != nil {
		return nil, err
	}
	for x := range s1.All() {
		if s.Contains(x) {
			continue
		}
		if _, err := r.Insert(x); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// IsSubset reports whether every member of s is in s1.
func (s *Set[T]) IsSubset(s1 *Set[T]) bool {
	if s.Len() > s1.Len() {
		return false
	}
	for x := range s.All() {
		if !s1.Contains(x) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of s1 is in s.
func (s *Set[T]) IsSuperset(s1 *Set[T]) bool {
	return s1.IsSubset(s)
}

// IsProperSubset reports whether s is a subset of s1 and s1 has
// members that s lacks.
func (s *Set[T]) IsProperSubset(s1 *Set[T]) bool {
	return s.Len() < s1.Len() && s.IsSubset(s1)
}

// IsProperSuperset reports whether s1 is a proper subset of s.
func (s *Set[T]) IsProperSuperset(s1 *Set[T]) bool {
	return s1.IsProperSubset(s)
}

// IsDisjoint reports whether s and s1 have no members in common.
func (s *Set[T]) IsDisjoint(s1 *Set[T]) bool {
	if s.Len() > s1.Len() {
		s, s1 = s1, s
	}
	for x := range s.All() {
		if s1.Contains(x) {
			return false
		}
	}
	return true
}

// filter returns a new set like s with room for n members,
// holding the members of s for which keep returns true.
func (s *Set[T]) filter(n int, keep func(T) bool) (*Set[T], error) {
	r, err := New(max(n, 1), s.t.Load(), s.t.Hasher())
	if err != nil {
		return nil, err
	}
	for x := range s.All() {
		if !keep(x) {
			continue
		}
		if _, err := r.Insert(x); err != nil {
			return nil, err
		}
	}
	return r, nil
}
