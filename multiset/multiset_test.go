package multiset_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hashcoll/hashtable"
	"github.com/rogpeppe/hashcoll/multiset"
)

func newMultiset(t *testing.T, xs ...string) *multiset.Multiset[string] {
	m, err := multiset.New[string](4, 0.75, hashtable.Strings{})
	qt.Assert(t, qt.IsNil(err))
	for _, x := range xs {
		qt.Assert(t, qt.IsNil(m.Insert(x)))
	}
	return m
}

func contents(m *multiset.Multiset[string]) map[string]int {
	r := make(map[string]int)
	for x, n := range m.All() {
		r[x] = n
	}
	return r
}

func TestInsertRemove(t *testing.T) {
	m := newMultiset(t, "a", "b", "a", "c", "a")
	qt.Assert(t, qt.Equals(m.Len(), 3))
	qt.Assert(t, qt.Equals(m.Cardinality(), 5))
	qt.Assert(t, qt.Equals(m.Multiplicity("a"), 3))
	qt.Assert(t, qt.Equals(m.Multiplicity("z"), 0))

	qt.Assert(t, qt.IsTrue(m.Remove("a")))
	qt.Assert(t, qt.Equals(m.Multiplicity("a"), 2))
	qt.Assert(t, qt.Equals(m.Cardinality(), 4))

	qt.Assert(t, qt.IsTrue(m.Remove("b")))
	qt.Assert(t, qt.IsFalse(m.Contains("b")))
	qt.Assert(t, qt.Equals(m.Len(), 2))
	qt.Assert(t, qt.IsFalse(m.Remove("b")))
	qt.Assert(t, qt.Equals(m.Cardinality(), 3))
}

func TestInsertManyUpdateRemoveAll(t *testing.T) {
	m := newMultiset(t)
	qt.Assert(t, qt.IsNil(m.InsertMany("x", 4)))
	qt.Assert(t, qt.IsNil(m.InsertMany("x", 0)))
	qt.Assert(t, qt.IsNil(m.InsertMany("y", 0)))
	qt.Assert(t, qt.IsFalse(m.Contains("y")))
	qt.Assert(t, qt.Equals(m.Multiplicity("x"), 4))

	qt.Assert(t, qt.IsNil(m.Update("x", 2)))
	qt.Assert(t, qt.Equals(m.Cardinality(), 2))
	qt.Assert(t, qt.IsNil(m.Update("y", 7)))
	qt.Assert(t, qt.Equals(m.Cardinality(), 9))

	qt.Assert(t, qt.IsNil(m.Update("x", 0)))
	qt.Assert(t, qt.IsFalse(m.Contains("x")))
	qt.Assert(t, qt.Equals(m.Cardinality(), 7))

	qt.Assert(t, qt.Equals(m.RemoveAll("y"), 7))
	qt.Assert(t, qt.Equals(m.RemoveAll("y"), 0))
	qt.Assert(t, qt.Equals(m.Cardinality(), 0))
	qt.Assert(t, qt.Equals(m.Len(), 0))
}

func TestNegativeCountPanics(t *testing.T) {
	m := newMultiset(t)
	qt.Assert(t, qt.PanicMatches(func() {
		m.InsertMany("x", -1)
	}, `multiset: InsertMany called with negative count -1`))
	qt.Assert(t, qt.PanicMatches(func() {
		m.Update("x", -2)
	}, `multiset: Update called with negative count -2`))
}

func TestClearResetsCardinality(t *testing.T) {
	m := newMultiset(t, "a", "a", "b")
	m.Clear()
	qt.Assert(t, qt.Equals(m.Len(), 0))
	qt.Assert(t, qt.Equals(m.Cardinality(), 0))
	m.Insert("c")
	qt.Assert(t, qt.Equals(m.Cardinality(), 1))
	m.Release()
	qt.Assert(t, qt.Equals(m.Cardinality(), 0))
	qt.Assert(t, qt.Equals(m.Cap(), 0))
}

func TestMinMax(t *testing.T) {
	m := newMultiset(t, "m", "c", "c", "x")
	x, n, ok := m.Min()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, "c"))
	qt.Assert(t, qt.Equals(n, 2))
	x, n, ok = m.Max()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, "x"))
	qt.Assert(t, qt.Equals(n, 1))
}

func TestCloneEqual(t *testing.T) {
	m := newMultiset(t, "a", "a", "b")
	m1 := m.Clone()
	qt.Assert(t, qt.IsTrue(m.Equal(m1)))
	m1.Insert("a")
	qt.Assert(t, qt.IsFalse(m.Equal(m1)))
	qt.Assert(t, qt.Equals(m.Multiplicity("a"), 2))
	m1.Remove("a")
	m1.Remove("b")
	m1.Insert("c")
	// Same length and cardinality, different contents.
	qt.Assert(t, qt.IsFalse(m.Equal(m1)))
}

func TestGrowth(t *testing.T) {
	m := newMultiset(t)
	for i := range 500 {
		qt.Assert(t, qt.IsNil(m.InsertMany(string(rune('a'+i%100)), 1+i/100)))
	}
	qt.Assert(t, qt.Equals(m.Len(), 100))
	// Each of the 100 values was inserted with counts 1 through 5.
	qt.Assert(t, qt.Equals(m.Cardinality(), 100*15))
	qt.Assert(t, qt.Equals(m.Multiplicity("a"), 15))
	qt.Assert(t, qt.IsNil(m.Resize(1000)))
	qt.Assert(t, qt.Equals(m.Multiplicity(string(rune('a'+99))), 15))
}

var algebraTests = []struct {
	testName string
	m1, m2   []string
	union    map[string]int
	inter    map[string]int
	diff     map[string]int
	sum      map[string]int
	symdiff  map[string]int
}{{
	testName: "overlapping",
	m1:       []string{"a", "a", "a", "b", "c", "c"},
	m2:       []string{"a", "b", "b", "d"},
	union:    map[string]int{"a": 3, "b": 2, "c": 2, "d": 1},
	inter:    map[string]int{"a": 1, "b": 1},
	diff:     map[string]int{"a": 2, "c": 2},
	sum:      map[string]int{"a": 4, "b": 3, "c": 2, "d": 1},
	symdiff:  map[string]int{"a": 2, "b": 1, "c": 2, "d": 1},
}, {
	testName: "disjoint",
	m1:       []string{"a", "a"},
	m2:       []string{"b"},
	union:    map[string]int{"a": 2, "b": 1},
	inter:    map[string]int{},
	diff:     map[string]int{"a": 2},
	sum:      map[string]int{"a": 2, "b": 1},
	symdiff:  map[string]int{"a": 2, "b": 1},
}, {
	testName: "equal",
	m1:       []string{"x", "y", "x"},
	m2:       []string{"y", "x", "x"},
	union:    map[string]int{"x": 2, "y": 1},
	inter:    map[string]int{"x": 2, "y": 1},
	diff:     map[string]int{},
	sum:      map[string]int{"x": 4, "y": 2},
	symdiff:  map[string]int{},
}, {
	testName: "empty",
	m1:       nil,
	m2:       []string{"q"},
	union:    map[string]int{"q": 1},
	inter:    map[string]int{},
	diff:     map[string]int{},
	sum:      map[string]int{"q": 1},
	symdiff:  map[string]int{"q": 1},
}}

func TestAlgebra(t *testing.T) {
	for _, test := range algebraTests {
		t.Run(test.testName, func(t *testing.T) {
			m1 := newMultiset(t, test.m1...)
			m2 := newMultiset(t, test.m2...)
			before1, before2 := m1.Clone(), m2.Clone()

			check := func(name string, r *multiset.Multiset[string], err error, want map[string]int) {
				t.Helper()
				qt.Assert(t, qt.IsNil(err))
				qt.Assert(t, qt.DeepEquals(contents(r), want), qt.Commentf("%s", name))
				card := 0
				for _, n := range want {
					card += n
				}
				qt.Assert(t, qt.Equals(r.Cardinality(), card), qt.Commentf("%s", name))
			}
			r, err := m1.Union(m2)
			check("union", r, err, test.union)
			r, err = m1.Intersection(m2)
			check("intersection", r, err, test.inter)
			r, err = m1.Difference(m2)
			check("difference", r, err, test.diff)
			r, err = m1.Sum(m2)
			check("sum", r, err, test.sum)
			r, err = m1.SymmetricDifference(m2)
			check("symmetric difference", r, err, test.symdiff)

			qt.Assert(t, qt.IsTrue(m1.Equal(before1)))
			qt.Assert(t, qt.IsTrue(m2.Equal(before2)))
		})
	}
}

func TestPredicates(t *testing.T) {
	small := newMultiset(t, "a", "b")
	big := newMultiset(t, "a", "a", "b", "c")
	same := newMultiset(t, "b", "a")
	other := newMultiset(t, "z")
	// Same distinct values as big but fewer copies of "a".
	fewer := newMultiset(t, "a", "b", "c")

	qt.Assert(t, qt.IsTrue(small.IsSubset(big)))
	qt.Assert(t, qt.IsTrue(small.IsSubset(same)))
	qt.Assert(t, qt.IsFalse(big.IsSubset(small)))
	qt.Assert(t, qt.IsTrue(fewer.IsSubset(big)))
	qt.Assert(t, qt.IsFalse(big.IsSubset(fewer)))

	qt.Assert(t, qt.IsTrue(big.IsSuperset(small)))
	qt.Assert(t, qt.IsFalse(small.IsSuperset(big)))

	qt.Assert(t, qt.IsTrue(small.IsProperSubset(big)))
	qt.Assert(t, qt.IsFalse(small.IsProperSubset(same)))
	qt.Assert(t, qt.IsTrue(fewer.IsProperSubset(big)))
	qt.Assert(t, qt.IsTrue(big.IsProperSuperset(small)))
	qt.Assert(t, qt.IsFalse(same.IsProperSuperset(small)))

	qt.Assert(t, qt.IsTrue(small.IsDisjoint(other)))
	qt.Assert(t, qt.IsTrue(other.IsDisjoint(big)))
	qt.Assert(t, qt.IsFalse(small.IsDisjoint(big)))

	empty := newMultiset(t)
	qt.Assert(t, qt.IsTrue(empty.IsSubset(small)))
	qt.Assert(t, qt.IsTrue(empty.IsProperSubset(small)))
	qt.Assert(t, qt.IsTrue(empty.IsDisjoint(small)))
}

func TestIterator(t *testing.T) {
	m := newMultiset(t, "a", "b", "b", "c", "c", "c")
	got := make(map[string]int)
	for it := m.Iter(); !it.AtEnd(); it.Next() {
		x, ok := it.Value()
		qt.Assert(t, qt.IsTrue(ok))
		got[x] = it.Multiplicity()
	}
	qt.Assert(t, qt.DeepEquals(got, map[string]int{"a": 1, "b": 2, "c": 3}))

	n := 0
	for it := m.IterEnd(); !it.AtStart(); it.Prev() {
		n += it.Multiplicity()
	}
	qt.Assert(t, qt.Equals(n, m.Cardinality()))

	empty := newMultiset(t)
	it := empty.Iter()
	_, ok := it.Value()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(it.Multiplicity(), 0))
}

func TestNilMultiset(t *testing.T) {
	var m *multiset.Multiset[string]
	qt.Assert(t, qt.Equals(m.Len(), 0))
	qt.Assert(t, qt.Equals(m.Cardinality(), 0))
	qt.Assert(t, qt.Equals(m.Multiplicity("a"), 0))
	qt.Assert(t, qt.IsFalse(m.Contains("a")))
	qt.Assert(t, qt.IsNil(m.Clone()))
	qt.Assert(t, qt.IsTrue(m.IsSubset(newMultiset(t, "a"))))
	qt.Assert(t, qt.Equals(m.Cap(), 0))
	qt.Assert(t, qt.Equals(m.Load(), 0.0))
	_, _, ok := m.Min()
	qt.Assert(t, qt.IsFalse(ok))
	_, _, ok = m.Max()
	qt.Assert(t, qt.IsFalse(ok))

	it := m.Iter()
	qt.Assert(t, qt.IsTrue(it.AtEnd()))
	_, ok = it.Value()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(it.Multiplicity(), 0))
	it = m.IterEnd()
	qt.Assert(t, qt.IsTrue(it.AtStart()))
	qt.Assert(t, qt.IsFalse(it.Rewind(1)))
}
