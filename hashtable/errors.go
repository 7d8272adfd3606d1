package hashtable

import "errors"

var (
	// ErrInvalidLoad is returned when a load factor is not
	// strictly between 0 and 1.
	ErrInvalidLoad = errors.New("load factor out of range (0, 1)")

	// ErrZeroCapacity is returned when a table is asked to hold
	// no entries.
	ErrZeroCapacity = errors.New("capacity must be positive")

	// ErrCapacityOverflow is returned when the number of slots
	// needed for a capacity cannot be represented.
	ErrCapacityOverflow = errors.New("capacity overflow")

	// ErrAlloc is returned when slot storage cannot be allocated.
	// The table involved is left as it was.
	ErrAlloc = errors.New("cannot allocate slots")

	// ErrShrink is returned by Resize when the requested size cannot
	// hold the entries already in the table.
	ErrShrink = errors.New("cannot shrink below current count")

	// ErrRebuild is returned when a rebuild fails to carry every entry
	// over to the new slot array. The table is left untouched.
	ErrRebuild = errors.New("rebuild lost entries")
)
