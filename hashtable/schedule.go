package hashtable

import (
	"fmt"
	"math"
	"runtime"

	"github.com/rogpeppe/hashcoll/internal/allochook"
)

// primes holds the growth schedule. Each value is roughly double the
// previous one, so rebuilds happen at predictable sizes.
var primes = [...]uint64{
	53, 97, 191, 383, 769, 1531, 3067, 6143, 12289, 24571, 49157,
	98299, 196613, 393209, 786431, 1572869, 3145721, 6291449,
	12582917, 25165813, 50331653, 100663291, 201326611, 402653189,
	805306357, 1610612741, 3221225473, 6442450939, 12884901893,
	25769803799, 51539607551, 103079215111, 206158430209,
	412316860441, 824633720831, 1649267441651, 3298534883309,
	6597069766657, 13194139533299, 26388279066623, 52776558133303,
	105553116266489, 211106232532969, 422212465066001,
	844424930131963, 1688849860263953, 3377699720527861,
	6755399441055731, 13510798882111483, 27021597764222939,
	54043195528445957, 108086391056891903, 216172782113783773,
	432345564227567621, 864691128455135207, 1729382256910270481,
	3458764513820540933, 6917529027641081903, 13835058055282163729,
}

// growthFactor is the minimum ratio between the capacity of a
// table after automatic growth and its capacity before.
const growthFactor = 1.5

// maxSlots bounds the number of slots a table may ask for.
const maxSlots = float64(math.MaxInt)

// Capacity returns the number of slots a table uses when it
// needs at least required slots: the first value in the growth
// schedule that is not less than required, or required itself when
// it lies beyond the schedule.
func Capacity(required int) int {
	if required <= 0 {
		return int(primes[0])
	}
	for _, p := range primes {
		if p >= uint64(required) {
			if p > math.MaxInt {
				break
			}
			return int(p)
		}
	}
	return required
}

// requiredSlots returns the number of slots needed to hold n
// entries at the given load factor.
func requiredSlots(n int, load float64) (int, error) {
	// Written this way round so that NaN is rejected too.
	if !(load > 0 && load < 1) {
		return 0, fmt.Errorf("load factor %v: %w", load, ErrInvalidLoad)
	}
	if n <= 0 {
		return 0, fmt.Errorf("capacity %d: %w", n, ErrZeroCapacity)
	}
	need := math.Ceil(float64(n) / load)
	if need >= maxSlots {
		return 0, fmt.Errorf("%d entries at load factor %v: %w", n, load, ErrCapacityOverflow)
	}
	return int(need), nil
}

// makeSlots allocates n empty slots, turning a runtime allocation
// panic into ErrAlloc.
func makeSlots[K, P any](n int) (s []slot[K, P], err error) {
	if allochook.Fail != nil && allochook.Fail(n) {
		return nil, fmt.Errorf("cannot allocate %d slots: %w", n, ErrAlloc)
	}
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if re, ok := e.(runtime.Error); ok {
			err = fmt.Errorf("cannot allocate %d slots: %v: %w", n, re, ErrAlloc)
			return
		}
		panic(e)
	}()
	return make([]slot[K, P], n), nil
}
