package variants

import "github.com/goose-lang/multisum"

// Accumulator owns the running state of a scan: the last number considered
// and the sum of the multiples seen so far. The caller decides how many steps
// to take.
type Accumulator struct {
	bases []uint64
	v     uint64
	s     uint64
}

func NewAccumulator(bases []uint64) *Accumulator {
	return &Accumulator{bases: bases}
}

// Step considers the next number and returns the updated sum.
func (a *Accumulator) Step() uint64 {
	a.v++
	if multisum.DivisibleByAny(a.v, a.bases) {
		a.s += a.v
	}
	return a.s
}

func accumulatorSum(bases []uint64, limit uint64) uint64 {
	acc := NewAccumulator(bases)
	var result uint64
	for i := uint64(1); i < limit; i++ {
		result = acc.Step()
	}
	return result
}
