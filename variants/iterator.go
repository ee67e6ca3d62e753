package variants

import (
	"iter"

	"github.com/goose-lang/multisum"
)

// RunningSums yields, for v = 0, 1, 2, ..., the sum of the multiples of bases
// that are at most v. The sequence is unbounded.
func RunningSums(bases []uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		var s uint64
		for v := uint64(0); ; v++ {
			if multisum.DivisibleByAny(v, bases) {
				s += v
			}
			if !yield(s) {
				return
			}
		}
	}
}

// nth returns element i of seq (counting from 0), or false if seq is shorter.
func nth[T any](seq iter.Seq[T], i uint64) (T, bool) {
	var k uint64
	for x := range seq {
		if k == i {
			return x, true
		}
		k++
	}
	var zero T
	return zero, false
}

func iteratorSum(bases []uint64, limit uint64) uint64 {
	s, _ := nth(RunningSums(bases), limit-1)
	return s
}
