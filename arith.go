package multisum

import (
	"math"
	"math/bits"
)

// Triangular returns 1 + 2 + ... + k.
func Triangular(k uint64) uint64 {
	// halve whichever factor is even first so k*(k+1) never has to be formed
	if k%2 == 0 {
		return (k / 2) * (k + 1)
	}
	return k * ((k + 1) / 2)
}

// CountBelow returns how many positive multiples of d are strictly less than
// limit.
//
// Requires d > 0 and limit > 0.
func CountBelow(limit uint64, d uint64) uint64 {
	return (limit - 1) / d
}

// MultiplesOf returns the sum of the positive multiples of d below limit.
func MultiplesOf(d uint64, limit uint64) uint64 {
	return d * Triangular(CountBelow(limit, d))
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, saturating at
// math.MaxUint64 if it does not fit.
//
// Requires a > 0 and b > 0.
func LCM(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
