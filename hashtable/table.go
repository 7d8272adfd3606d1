// Package hashtable implements an open-addressing hash table using
// robin-hood hashing. It is the engine underneath the hashmap,
// hashset, multiset and bidimap packages, each of which chooses
// what payload P is stored alongside every key.
//
// Collisions are resolved by linear probing. When a key being
// inserted has travelled further from its ideal slot than the
// resident of the slot it's looking at, the two swap places and
// insertion continues with the evicted entry. On equal displacement
// the resident stays put.
//
// Deleted entries leave tombstones behind. Tombstones are reused by
// later insertions and are only discarded when the table is
// rebuilt; there is no backward-shift compaction.
//
// Table sizes are drawn from a fixed ascending schedule of primes
// (see [Capacity]).
//
// A Table is not safe for concurrent use.
package hashtable

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// State holds the state of a slot in a table.
type State uint8

const (
	// Empty slots have never held an entry since the
	// table was created, cleared or rebuilt.
	Empty State = iota

	// Filled slots hold a live entry.
	Filled

	// Deleted slots held an entry that has since been removed.
	Deleted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

type slot[K, P any] struct {
	key     K
	payload P
	// dist holds the number of probe steps between the
	// key's ideal slot and this one.
	dist  int
	state State
}

// Table is a hash table holding keys of type K, each
// associated with a payload of type P.
type Table[K, P any] struct {
	slots    []slot[K, P]
	count    int
	load     float64
	hasher   Hasher[K]
	release  func(K, P)
	rebuilds int
}

// New returns a table able to hold at least capacity entries
// before it needs to grow, keeping the proportion of filled slots
// at or below load. The actual number of slots is
// Capacity(ceil(capacity/load)).
//
// It returns an error if load is not strictly between 0 and 1, if
// capacity isn't positive or if the slot count overflows.
func New[K, P any](capacity int, load float64, h Hasher[K]) (*Table[K, P], error) {
	if h == nil {
		panic("hashtable.New called with nil Hasher")
	}
	n, err := requiredSlots(capacity, load)
	if err != nil {
		return nil, err
	}
	slots, err := makeSlots[K, P](Capacity(n))
	if err != nil {
		return nil, err
	}
	return &Table[K, P]{
		slots:  slots,
		load:   load,
		hasher: h,
	}, nil
}

// Len returns the number of entries in the table.
func (t *Table[K, P]) Len() int {
	return t.count
}

// Cap returns the number of slots in the table.
func (t *Table[K, P]) Cap() int {
	return len(t.slots)
}

// Load returns the load factor the table was created with.
func (t *Table[K, P]) Load() float64 {
	return t.load
}

// Hasher returns the hasher used by the table.
func (t *Table[K, P]) Hasher() Hasher[K] {
	return t.hasher
}

// Full reports whether the next insertion of a new key
// will rebuild the table.
func (t *Table[K, P]) Full() bool {
	return float64(t.count) >= float64(len(t.slots))*t.load
}

// Rebuilds returns the number of times the table's slots have been
// reallocated since it was created.
func (t *Table[K, P]) Rebuilds() int {
	return t.rebuilds
}

// SetReleaseFunc sets a function that is called for every entry
// discarded by Clear or Release. Entries removed with Delete are
// returned to the caller instead.
func (t *Table[K, P]) SetReleaseFunc(f func(K, P)) {
	t.release = f
}

// Lookup returns a pointer to the payload associated with k and
// reports whether k was found. The pointer remains valid until the
// table is next modified.
func (t *Table[K, P]) Lookup(k K) (*P, bool) {
	i := t.find(k)
	if i < 0 {
		return nil, false
	}
	return &t.slots[i].payload, true
}

// Get returns the key stored in the table (equal to k but not
// necessarily identical), its payload, and reports whether the
// entry was found.
func (t *Table[K, P]) Get(k K) (K, P, bool) {
	i := t.find(k)
	if i < 0 {
		return *new(K), *new(P), false
	}
	s := &t.slots[i]
	return s.key, s.payload, true
}

// Contains reports whether k is in the table.
func (t *Table[K, P]) Contains(k K) bool {
	return t.find(k) >= 0
}

// Upsert makes sure there is an entry for k, and returns a pointer
// to its payload. If k was not already present, it is added with a
// zero payload and inserted is true. The pointer remains valid until
// the table is next modified.
//
// Upsert grows the table before adding a new key if the load factor
// would otherwise be exceeded. If that fails, the table is left
// unchanged and the error is returned.
func (t *Table[K, P]) Upsert(k K) (p *P, inserted bool, err error) {
	if i := t.find(k); i >= 0 {
		return &t.slots[i].payload, false, nil
	}
	if t.Full() {
		if err := t.grow(); err != nil {
			return nil, false, err
		}
	}
	i := t.place(k, *new(P))
	if i < 0 {
		panic("hashtable: no free slot in table below its load factor")
	}
	return &t.slots[i].payload, true, nil
}

// Insert adds k with payload p. Keys are unique: if k is already
// present, Insert returns false and leaves the existing payload
// alone.
func (t *Table[K, P]) Insert(k K, p P) (bool, error) {
	ref, inserted, err := t.Upsert(k)
	if !inserted {
		return false, err
	}
	*ref = p
	return true, nil
}

// Delete removes k from the table, returning the stored key and
// payload. It reports whether k was present.
func (t *Table[K, P]) Delete(k K) (K, P, bool) {
	i := t.find(k)
	if i < 0 {
		return *new(K), *new(P), false
	}
	s := &t.slots[i]
	key, p := s.key, s.payload
	*s = slot[K, P]{state: Deleted}
	t.count--
	return key, p, true
}

// Min returns the entry with the smallest key, as ordered by the
// table's hasher. It returns false if the table is empty.
func (t *Table[K, P]) Min() (K, P, bool) {
	return t.extreme(-1)
}

// Max returns the entry with the largest key, as ordered by the
// table's hasher. It returns false if the table is empty.
func (t *Table[K, P]) Max() (K, P, bool) {
	return t.extreme(1)
}

func (t *Table[K, P]) extreme(sign int) (K, P, bool) {
	best := -1
	for i := range t.slots {
		if t.slots[i].state != Filled {
			continue
		}
		if best < 0 || t.hasher.Compare(t.slots[i].key, t.slots[best].key)*sign > 0 {
			best = i
		}
	}
	if best < 0 {
		return *new(K), *new(P), false
	}
	return t.slots[best].key, t.slots[best].payload, true
}

// Clear removes all entries, keeping the current capacity. The
// release function, if set, is called on each entry first.
func (t *Table[K, P]) Clear() {
	if t.release != nil {
		for i := range t.slots {
			if s := &t.slots[i]; s.state == Filled {
				t.release(s.key, s.payload)
			}
		}
	}
	clear(t.slots)
	t.count = 0
}

// Release clears the table and drops its slot storage. A released
// table behaves as an empty table and allocates storage again on
// the next insertion.
func (t *Table[K, P]) Release() {
	t.Clear()
	t.slots = nil
}

// Resize grows the table so that it has room for n entries
// at its load factor. Rebuilding discards all tombstones.
// The table never shrinks: if the current capacity is already
// enough, Resize does nothing.
//
// Resize returns ErrShrink if n is smaller than the current number
// of entries.
func (t *Table[K, P]) Resize(n int) error {
	if n < t.count {
		return fmt.Errorf("resize to %d entries with %d present: %w", n, t.count, ErrShrink)
	}
	need, err := requiredSlots(max(n, 1), t.load)
	if err != nil {
		return err
	}
	size := Capacity(need)
	if len(t.slots) >= size {
		return nil
	}
	return t.rebuild(size)
}

// Clone returns a copy of the table. The copy has the same
// layout as t, tombstones included. Keys and payloads are copied
// by assignment.
func (t *Table[K, P]) Clone() *Table[K, P] {
	t1 := *t
	t1.slots = slices.Clone(t.slots)
	return &t1
}

// All returns an iterator over all the entries in the table in
// slot order. Slot order is unrelated to insertion order.
func (t *Table[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.state != Filled {
				continue
			}
			if !yield(s.key, s.payload) {
				return
			}
		}
	}
}

// Keys returns an iterator over all the keys in the table in
// slot order.
func (t *Table[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// grow rebuilds the table with at least growthFactor times as many
// slots, and enough room for one more entry.
func (t *Table[K, P]) grow() error {
	target := max(float64(len(t.slots))*growthFactor, float64(t.count+1)/t.load)
	if target >= maxSlots {
		return fmt.Errorf("growing table with %d slots: %w", len(t.slots), ErrAlloc)
	}
	return t.rebuild(Capacity(int(math.Ceil(target))))
}

// rebuild moves every entry into a new slot array of the given
// size. The entries are reinserted in slot order. On failure the
// table is left as it was.
func (t *Table[K, P]) rebuild(size int) error {
	slots, err := makeSlots[K, P](size)
	if err != nil {
		return err
	}
	t1 := &Table[K, P]{
		slots:  slots,
		load:   t.load,
		hasher: t.hasher,
	}
	for i := range t.slots {
		if s := &t.slots[i]; s.state == Filled {
			t1.place(s.key, s.payload)
		}
	}
	if t1.count != t.count {
		return fmt.Errorf("rebuild into %d slots kept %d of %d entries: %w", size, t1.count, t.count, ErrRebuild)
	}
	t.slots = t1.slots
	t.rebuilds++
	return nil
}

// place adds a key known not to be in the table, using the
// robin-hood rule, and returns the index of the slot
// that k itself ends up in, or -1 if there was no room.
func (t *Table[K, P]) place(k K, p P) int {
	n := len(t.slots)
	if n == 0 {
		return -1
	}
	pos := t.ideal(k)
	cand := slot[K, P]{
		key:     k,
		payload: p,
		state:   Filled,
	}
	at := -1
	for range n {
		s := &t.slots[pos]
		if s.state != Filled {
			*s = cand
			if at < 0 {
				at = pos
			}
			t.count++
			return at
		}
		if s.dist < cand.dist {
			// The resident is closer to home than we are: take its
			// place and carry on with it instead.
			*s, cand = cand, *s
			if at < 0 {
				at = pos
			}
		}
		pos = t.next(pos)
		cand.dist++
	}
	return -1
}

// find returns the index of the slot holding k, or -1.
// Tombstones do not stop the search; an empty slot does.
func (t *Table[K, P]) find(k K) int {
	if t.count == 0 {
		return -1
	}
	pos := t.ideal(k)
	for range len(t.slots) {
		s := &t.slots[pos]
		switch s.state {
		case Empty:
			return -1
		case Filled:
			if t.hasher.Compare(s.key, k) == 0 {
				return pos
			}
		}
		pos = t.next(pos)
	}
	return -1
}

// ideal returns the index of the slot that k hashes to.
func (t *Table[K, P]) ideal(k K) int {
	return int(t.hasher.Hash(k) % uint64(len(t.slots)))
}

func (t *Table[K, P]) next(pos int) int {
	pos++
	if pos == len(t.slots) {
		pos = 0
	}
	return pos
}

// distance returns the number of forward probe steps from slot
// from to slot to in a circular array of n slots.
func distance(from, to, n int) int {
	return ((to-from)%n + n) % n
}
