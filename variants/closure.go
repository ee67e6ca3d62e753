package variants

import "github.com/goose-lang/multisum"

func closureSum(bases []uint64, limit uint64) uint64 {
	var s, v uint64
	step := func() {
		v++
		if multisum.DivisibleByAny(v, bases) {
			s += v
		}
	}
	var i uint64 = 1
	forLoop(
		func() bool { return i < limit },
		func() bool {
			step()
			return true
		},
		func() { i++ },
	)
	return s
}
