package hashtable

import "fmt"

// SlotInfo describes the contents of a single slot.
type SlotInfo[K, P any] struct {
	Key     K
	Payload P
	State   State
	// Dist holds the displacement of the entry from its ideal slot.
	Dist int
}

// Slot returns information on the i'th slot of the table.
// It panics if i is out of range.
func (t *Table[K, P]) Slot(i int) SlotInfo[K, P] {
	s := &t.slots[i]
	return SlotInfo[K, P]{
		Key:     s.key,
		Payload: s.payload,
		State:   s.state,
		Dist:    s.dist,
	}
}

// Stats holds statistics about the layout of a table.
type Stats struct {
	Count      int
	Capacity   int
	Tombstones int
	Rebuilds   int
	// MaxDist holds the largest displacement of any entry.
	MaxDist int
	// MeanDist holds the mean displacement over all entries.
	MeanDist float64
}

// Stats returns statistics about the current layout of the table.
func (t *Table[K, P]) Stats() Stats {
	st := Stats{
		Count:    t.count,
		Capacity: len(t.slots),
		Rebuilds: t.rebuilds,
	}
	total := 0
	for i := range t.slots {
		switch s := &t.slots[i]; s.state {
		case Deleted:
			st.Tombstones++
		case Filled:
			total += s.dist
			st.MaxDist = max(st.MaxDist, s.dist)
		}
	}
	if t.count > 0 {
		st.MeanDist = float64(total) / float64(t.count)
	}
	return st
}

// Verify checks the structural invariants of the table and returns
// an error describing the first violation found:
//
//   - walking forward Dist steps (modulo the capacity) from
//     an entry's ideal slot arrives at the entry's slot;
//   - no empty slot lies between an entry's ideal slot and its slot;
//   - every key is found by lookup at the slot it occupies;
//   - the entry count matches the number of filled slots.
func (t *Table[K, P]) Verify() error {
	n := len(t.slots)
	count := 0
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != Filled {
			if s.dist != 0 {
				return fmt.Errorf("%v slot %d has displacement %d", s.state, i, s.dist)
			}
			continue
		}
		count++
		ideal := t.ideal(s.key)
		if d := distance(ideal, i, n); d != s.dist {
			return fmt.Errorf("slot %d: recorded displacement %d, actual %d from ideal slot %d", i, s.dist, d, ideal)
		}
		for j := ideal; j != i; j = t.next(j) {
			if t.slots[j].state == Empty {
				return fmt.Errorf("slot %d: empty slot %d inside its probe sequence", i, j)
			}
		}
	}
	if count != t.count {
		return fmt.Errorf("count is %d but %d slots are filled", t.count, count)
	}
	for i := range t.slots {
		if s := &t.slots[i]; s.state == Filled {
			if j := t.find(s.key); j != i {
				return fmt.Errorf("key in slot %d found at slot %d", i, j)
			}
		}
	}
	return nil
}
