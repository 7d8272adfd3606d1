package hashtable

// Iterator is a bidirectional cursor over the entries of a table,
// visiting them in ascending slot order.
//
// An Iterator refers to the table's storage directly. It must
// not be used after the table has been rebuilt, cleared or
// released; doing so gives undefined results.
//
// Besides the entries themselves, an iterator has two sentinel
// positions: just before the first entry and just after the last.
// Next moving past the last entry puts the iterator at the end
// sentinel, leaving the cursor on the last entry; likewise Prev and
// the start sentinel. The usual loops are:
//
//	for it := t.Iter(); !it.AtEnd(); it.Next() {
//		...
//	}
//
//	for it := t.IterEnd(); !it.AtStart(); it.Prev() {
//		...
//	}
type Iterator[K, P any] struct {
	t *Table[K, P]
	// cursor holds the slot index of the current entry.
	cursor int
	// index holds the rank of the current entry among all entries.
	index int
	// first and last hold the slot indexes of the
	// first and last entries, computed when the
	// iterator was created.
	first, last int
	start, end  bool
}

// Iter returns an iterator positioned at the first entry.
// A nil table yields an iterator over no entries.
func (t *Table[K, P]) Iter() *Iterator[K, P] {
	it := t.newIter()
	it.ToStart()
	return it
}

// IterEnd returns an iterator positioned at the last entry.
// A nil table yields an iterator over no entries.
func (t *Table[K, P]) IterEnd() *Iterator[K, P] {
	it := t.newIter()
	it.ToEnd()
	return it
}

func (t *Table[K, P]) newIter() *Iterator[K, P] {
	it := &Iterator[K, P]{
		t:     t,
		start: true,
		end:   true,
	}
	if t == nil || t.count == 0 {
		return it
	}
	for i := range t.slots {
		if t.slots[i].state == Filled {
			it.first = i
			break
		}
	}
	for i := len(t.slots) - 1; i >= 0; i-- {
		if t.slots[i].state == Filled {
			it.last = i
			break
		}
	}
	return it
}

func (it *Iterator[K, P]) empty() bool {
	return it.t == nil || it.t.count == 0
}

// AtStart reports whether the iterator has moved before the first
// entry or the table is empty.
func (it *Iterator[K, P]) AtStart() bool {
	return it.empty() || it.start
}

// AtEnd reports whether the iterator has moved past the last entry or
// the table is empty.
func (it *Iterator[K, P]) AtEnd() bool {
	return it.empty() || it.end
}

// ToStart moves the iterator to the first entry. It returns false
// if the table is empty.
func (it *Iterator[K, P]) ToStart() bool {
	if it.empty() {
		return false
	}
	it.cursor = it.first
	it.index = 0
	it.start = true
	it.end = false
	return true
}

// ToEnd moves the iterator to the last entry. It returns false
// if the table is empty.
func (it *Iterator[K, P]) ToEnd() bool {
	if it.empty() {
		return false
	}
	it.cursor = it.last
	it.index = it.t.count - 1
	it.start = false
	it.end = true
	return true
}

// Next moves to the next entry and reports whether it did so. When
// there is no next entry, the iterator moves to its end sentinel
// and Next returns false.
func (it *Iterator[K, P]) Next() bool {
	if it.end {
		return false
	}
	if it.index+1 >= it.t.count {
		it.end = true
		return false
	}
	it.start = false
	it.index++
	for {
		it.cursor++
		if it.t.slots[it.cursor].state == Filled {
			return true
		}
	}
}

// Prev moves to the previous entry and reports whether it did so.
// When there is no previous entry, the iterator moves to its start
// sentinel and Prev returns false.
func (it *Iterator[K, P]) Prev() bool {
	if it.start {
		return false
	}
	if it.index == 0 {
		it.start = true
		return false
	}
	it.end = false
	it.index--
	for {
		it.cursor--
		if it.t.slots[it.cursor].state == Filled {
			return true
		}
	}
}

// Advance moves n entries forward. If fewer than n entries follow
// the current one, the iterator does not move and Advance returns
// false.
func (it *Iterator[K, P]) Advance(n int) bool {
	if it.end {
		return false
	}
	if it.index+1 >= it.t.count {
		it.end = true
		return false
	}
	if n <= 0 || it.index+n >= it.t.count {
		return false
	}
	for range n {
		it.Next()
	}
	return true
}

// Rewind moves n entries backward. If fewer than n entries precede
// the current one, the iterator does not move and Rewind returns
// false.
func (it *Iterator[K, P]) Rewind(n int) bool {
	if it.start {
		return false
	}
	if it.index == 0 {
		it.start = true
		return false
	}
	if n <= 0 || it.index < n {
		return false
	}
	for range n {
		it.Prev()
	}
	return true
}

// Seek moves the iterator to the entry with the given index and
// reports whether it did so.
func (it *Iterator[K, P]) Seek(index int) bool {
	switch {
	case it.empty() || index < 0 || index >= it.t.count:
		return false
	case index < it.index:
		return it.Rewind(it.index - index)
	case index > it.index:
		return it.Advance(index - it.index)
	}
	return true
}

// Index returns the rank of the current entry, counting from zero.
func (it *Iterator[K, P]) Index() int {
	return it.index
}

// Key returns the key of the current entry. It returns false if
// the table is empty.
func (it *Iterator[K, P]) Key() (K, bool) {
	if it.empty() {
		return *new(K), false
	}
	return it.t.slots[it.cursor].key, true
}

// Payload returns the payload of the current entry. It returns
// false if the table is empty.
func (it *Iterator[K, P]) Payload() (P, bool) {
	if it.empty() {
		return *new(P), false
	}
	return it.t.slots[it.cursor].payload, true
}

// PayloadRef returns a pointer to the payload of the current entry,
// or nil if the table is empty.
func (it *Iterator[K, P]) PayloadRef() *P {
	if it.empty() {
		return nil
	}
	return &it.t.slots[it.cursor].payload
}
