// Package multisum sums the positive integers below a limit that are
// multiples of at least one of a set of bases.
package multisum

import (
	"slices"
)

// SumMultiples returns the sum of every n with 1 <= n < limit that is
// divisible by at least one element of bases.
//
// The sum is computed in closed form by inclusion-exclusion over the subsets
// of bases, so the cost depends on the number of bases rather than on limit.
// Duplicate bases are ignored.
func SumMultiples(bases []uint64, limit uint64) (uint64, error) {
	if err := Validate(bases, limit); err != nil {
		return 0, err
	}
	return inclusionExclusion(minimalBases(Normalize(bases)), limit), nil
}

// ScanSum computes the same sum as SumMultiples by testing every candidate
// below limit. It is the reference the closed form is checked against.
func ScanSum(bases []uint64, limit uint64) (uint64, error) {
	if err := Validate(bases, limit); err != nil {
		return 0, err
	}
	var sum uint64
	for n := uint64(1); n < limit; n++ {
		if DivisibleByAny(n, bases) {
			sum += n
		}
	}
	return sum, nil
}

// DivisibleByAny reports whether some base divides n.
//
// Requires every base to be non-zero.
func DivisibleByAny(n uint64, bases []uint64) bool {
	for _, d := range bases {
		if n%d == 0 {
			return true
		}
	}
	return false
}

// Normalize returns a sorted copy of bases without duplicates.
func Normalize(bases []uint64) []uint64 {
	s := slices.Clone(bases)
	slices.Sort(s)
	return slices.Compact(s)
}

// minimalBases drops every base that is a multiple of a smaller one, since
// its multiples are already counted. bases must be normalized.
func minimalBases(bases []uint64) []uint64 {
	var keep []uint64
	for _, b := range bases {
		if !DivisibleByAny(b, keep) {
			keep = append(keep, b)
		}
	}
	return keep
}

// inclusionExclusion walks the non-empty subsets of bases, adding the
// multiples of each subset's lcm for odd-sized subsets and subtracting them for
// even-sized ones.
//
// A subset whose lcm is at least limit has no multiples below limit, and
// neither does any superset, so the walk does not descend into it. The running
// total may wrap around while terms are subtracted; the final value is exact
// as long as the true sum fits in a uint64.
func inclusionExclusion(bases []uint64, limit uint64) uint64 {
	var sum uint64
	var walk func(start int, l uint64, odd bool)
	walk = func(start int, l uint64, odd bool) {
		for i := start; i < len(bases); i++ {
			m := LCM(l, bases[i])
			if m >= limit {
				continue
			}
			term := MultiplesOf(m, limit)
			if odd {
				sum += term
			} else {
				sum -= term
			}
			walk(i+1, m, !odd)
		}
	}
	walk(0, 1, true)
	return sum
}
