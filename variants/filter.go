package variants

import (
	"iter"

	"github.com/goose-lang/multisum"
)

// numbers yields start, start+1, ..., end-1.
func numbers(start, end uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for n := start; n < end; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range seq {
			if keep(x) && !yield(x) {
				return
			}
		}
	}
}

func sum(seq iter.Seq[uint64]) uint64 {
	var s uint64
	for x := range seq {
		s += x
	}
	return s
}

func filterSum(bases []uint64, limit uint64) uint64 {
	return sum(filter(numbers(1, limit), func(n uint64) bool {
		return multisum.DivisibleByAny(n, bases)
	}))
}

type predicate = func(uint64) bool

func divisibleBy(d uint64) predicate {
	return func(n uint64) bool { return n%d == 0 }
}

func or(p, q predicate) predicate {
	return func(n uint64) bool { return p(n) || q(n) }
}

// disjunction builds the predicate n%b1 == 0 || n%b2 == 0 || ... one base at
// a time.
func disjunction(bases []uint64) predicate {
	p := divisibleBy(bases[0])
	for _, d := range bases[1:] {
		p = or(p, divisibleBy(d))
	}
	return p
}

func disjunctionSum(bases []uint64, limit uint64) uint64 {
	return sum(filter(numbers(1, limit), disjunction(bases)))
}
