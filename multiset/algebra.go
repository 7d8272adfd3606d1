package multiset

// The operations below return a new multiset that uses the load
// factor and hasher of the receiver. Neither operand is modified.

// Union returns the multiset holding every value in m or m1, with
// the larger of its two multiplicities.
func (m *Multiset[T]) Union(m1 *Multiset[T]) (*Multiset[T], error) {
	r := m.Clone()
	for x, n := range m1.All() {
		if n > r.Multiplicity(x) {
			if err := r.Update(x, n); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Intersection returns the multiset holding every value in both m
// and m1, with the smaller of its two multiplicities.
func (m *Multiset[T]) Intersection(m1 *Multiset[T]) (*Multiset[T], error) {
	r, err := m.empty(min(m.Len(), m1.Len()))
	if err != nil {
		return nil, err
	}
	for x, n := range m.All() {
		if n1 := m1.Multiplicity(x); n1 > 0 {
			if err := r.InsertMany(x, min(n, n1)); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Difference returns the multiset holding the values of m whose
// multiplicity exceeds that in m1, each with the excess as its
// multiplicity.
func (m *Multiset[T]) Difference(m1 *Multiset[T]) (*Multiset[T], error) {
	r, err := m.empty(m.Len())
	if err != nil {
		return nil, err
	}
	for x, n := range m.All() {
		if d := n - m1.Multiplicity(x); d > 0 {
			if err := r.InsertMany(x, d); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Sum returns the multiset holding every value in m or m1, with the
// sum of its two multiplicities.
func (m *Multiset[T]) Sum(m1 *Multiset[T]) (*Multiset[T], error) {
	r := m.Clone()
	for x, n := range m1.All() {
		if err := r.InsertMany(x, n); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SymmetricDifference returns the multiset holding every value whose
// multiplicities in m and m1 differ, with the absolute difference as
// its multiplicity.
func (m *Multiset[T]) SymmetricDifference(m1 *Multiset[T]) (*Multiset[T], error) {
	r, err := m.empty(m.Len() + m1.Len())
	if err != nil {
		return nil, err
	}
	for x, n := range m.All() {
		d := n - m1.Multiplicity(x)
		if d < 0 {
			d = -d
		}
		if err := r.InsertMany(x, d); err != nil {
			return nil, err
		}
	}
	for x, n := range m1.All() {
		if m.Contains(x) {
			continue
		}
		if err := r.InsertMany(x, n); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// IsSubset reports whether every value occurs in m1 at least as many
// times as it does in m.
func (m *Multiset[T]) IsSubset(m1 *Multiset[T]) bool {
	if m.Len() > m1.Len() || m.Cardinality() > m1.Cardinality() {
		return false
	}
	for x, n := range m.All() {
		if n > m1.Multiplicity(x) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether m1 is a subset of m.
func (m *Multiset[T]) IsSuperset(m1 *Multiset[T]) bool {
	return m1.IsSubset(m)
}

// IsProperSubset reports whether m is a subset of m1 and the two are
// not equal.
func (m *Multiset[T]) IsProperSubset(m1 *Multiset[T]) bool {
	return m.Cardinality() < m1.Cardinality() && m.IsSubset(m1)
}

// IsProperSuperset reports whether m1 is a proper subset of m.
func (m *Multiset[T]) IsProperSuperset(m1 *Multiset[T]) bool {
	return m1.IsProperSubset(m)
}

// IsDisjoint reports whether no value occurs in both m and m1.
func (m *Multiset[T]) IsDisjoint(m1 *Multiset[T]) bool {
	if m.Len() > m1.Len() {
		m, m1 = m1, m
	}
	for x := range m.All() {
		if m1.Contains(x) {
			return false
		}
	}
	return true
}

// empty returns an empty multiset like m with room for n values.
func (m *Multiset[T]) empty(n int) (*Multiset[T], error) {
	return New(max(n, 1), m.t.Load(), m.t.Hasher())
}
