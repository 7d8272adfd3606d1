package hashtable

import (
	"bytes"
	"cmp"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// A Hasher defines a hash function and a total order over values of
// type K. Compare must return zero exactly when two keys are to be
// treated as the same key, and Hash must produce the same output
// for any two such keys.
//
// Compare is also used to find the extremal keys in a table
// (see [Table.Min] and [Table.Max]).
type Hasher[K any] interface {
	Hash(K) uint64
	Compare(x, y K) int
}

// Funcs is an implementation of [Hasher] that uses plain
// functions. It's useful when the hash and comparison functions
// already exist.
type Funcs[K any] struct {
	HashFunc    func(K) uint64
	CompareFunc func(x, y K) int
}

func (f Funcs[K]) Hash(k K) uint64    { return f.HashFunc(k) }
func (f Funcs[K]) Compare(x, y K) int { return f.CompareFunc(x, y) }

var seed = maphash.MakeSeed()

// Ordered is an implementation of [Hasher] for ordered types.
// Hashes are seeded per process, so slot layout is not
// reproducible across runs.
type Ordered[K cmp.Ordered] struct {
	_ [0]func(K) // disallow conversion between Ordered[X] and Ordered[Y]
}

func (Ordered[K]) Hash(k K) uint64    { return maphash.Comparable(seed, k) }
func (Ordered[K]) Compare(x, y K) int { return cmp.Compare(x, y) }

// Strings hashes strings with xxhash. Unlike [Ordered], the
// hash is stable across processes.
type Strings struct{}

func (Strings) Hash(s string) uint64    { return xxhash.Sum64String(s) }
func (Strings) Compare(x, y string) int { return cmp.Compare(x, y) }

// Bytes hashes byte slices with xxhash and orders them
// lexically.
type Bytes struct{}

func (Bytes) Hash(b []byte) uint64    { return xxhash.Sum64(b) }
func (Bytes) Compare(x, y []byte) int { return bytes.Compare(x, y) }

// Identity uses an integer key as its own hash. The resulting
// layout is entirely predictable, which makes it useful for tests and
// for keys that are already well distributed.
type Identity[K constraints.Integer] struct{}

func (Identity[K]) Hash(k K) uint64    { return uint64(k) }
func (Identity[K]) Compare(x, y K) int { return cmp.Compare(x, y) }
