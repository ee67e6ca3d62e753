// Package variants holds several interchangeable ways of computing
// multisum.SumMultiples, each built on a different Go technique. All of them
// must agree with the closed form.
package variants

import (
	"slices"

	"github.com/goose-lang/multisum"
)

// A Func sums the multiples of bases below limit. Its arguments must already
// satisfy multisum.Validate.
type Func func(bases []uint64, limit uint64) uint64

// Variant is one named implementation technique.
type Variant struct {
	Label string
	// one-line description of the technique
	Doc string
	Sum Func
}

// Eval validates the arguments before running the variant.
func (v Variant) Eval(bases []uint64, limit uint64) (uint64, error) {
	if err := multisum.Validate(bases, limit); err != nil {
		return 0, err
	}
	return v.Sum(bases, limit), nil
}

var all = []Variant{
	{"formula", "closed-form inclusion-exclusion", formulaSum},
	{"filter", "range sequence filtered by a predicate", filterSum},
	{"disjunction", "predicate assembled at runtime from one test per base", disjunctionSum},
	{"generated", "predicate generated by predgen for fixed bases", generatedSum},
	{"closure", "closure-captured accumulator driven by loop combinators", closureSum},
	{"accumulator", "accumulator object stepped by the caller", accumulatorSum},
	{"iterator", "element limit-1 of the running-sum sequence", iteratorSum},
	{"cursor", "cursor advanced and read through separate methods", cursorSum},
}

// All returns every variant, in presentation order.
func All() []Variant {
	return slices.Clone(all)
}

// Lookup finds a variant by label.
func Lookup(label string) (Variant, bool) {
	i := slices.IndexFunc(all, func(v Variant) bool { return v.Label == label })
	if i < 0 {
		return Variant{}, false
	}
	return all[i], true
}

func formulaSum(bases []uint64, limit uint64) uint64 {
	sum, err := multisum.SumMultiples(bases, limit)
	if err != nil {
		panic(err)
	}
	return sum
}
