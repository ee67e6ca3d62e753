package variants

import (
	"slices"

	"github.com/goose-lang/multisum"
)

//go:generate go run ../cmd/predgen -bases 3,5 -pkg variants -o pred_gen.go

// generatedSum uses the generated predicate when bases are exactly the ones it
// was generated for, and the runtime disjunction otherwise.
func generatedSum(bases []uint64, limit uint64) uint64 {
	p := divisibleBy3or5
	if !slices.Equal(multisum.Normalize(bases), divisibleBy3or5Bases) {
		p = disjunction(bases)
	}
	return sum(filter(numbers(1, limit), p))
}
