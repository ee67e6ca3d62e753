package multisum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sumCase struct {
	name  string
	bases []uint64
	limit uint64
	want  uint64
}

var sumCases = []sumCase{
	{"euler", []uint64{3, 5}, 1000, 233168},
	{"small", []uint64{3, 5}, 10, 23},
	{"single base", []uint64{2}, 10, 20},
	{"empty range", []uint64{3, 5}, 1, 0},
	{"limit is excluded", []uint64{5}, 10, 5},
	{"base above limit", []uint64{50}, 10, 0},
	{"duplicates", []uint64{3, 3, 5, 5}, 10, 23},
	{"unsorted", []uint64{5, 3}, 1000, 233168},
	{"redundant base", []uint64{3, 6}, 20, 3 + 6 + 9 + 12 + 15 + 18},
	{"one divides everything", []uint64{1, 7}, 11, 55},
	{"three bases", []uint64{2, 3, 5}, 16, 2 + 3 + 4 + 5 + 6 + 8 + 9 + 10 + 12 + 14 + 15},
}

func TestSumMultiples(t *testing.T) {
	for _, tt := range sumCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumMultiples(tt.bases, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanSum(t *testing.T) {
	for _, tt := range sumCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanSum(tt.bases, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// every subset of 1..10 as bases, against a range of limits
func TestFormulaMatchesScan(t *testing.T) {
	for mask := 1; mask < 1<<10; mask++ {
		var bases []uint64
		for i := 0; i < 10; i++ {
			if mask&(1<<i) != 0 {
				bases = append(bases, uint64(i+1))
			}
		}
		for limit := uint64(1); limit <= 130; limit += 7 {
			formula, err := SumMultiples(bases, limit)
			require.NoError(t, err)
			scan, err := ScanSum(bases, limit)
			require.NoError(t, err)
			if formula != scan {
				t.Fatalf("bases %v limit %d: formula %d != scan %d",
					bases, limit, formula, scan)
			}
		}
	}
}

func TestFormulaMatchesScanLargeBases(t *testing.T) {
	bases := []uint64{7, 11, 13, 97, 1009}
	for _, limit := range []uint64{1000, 1009, 1010, 100000} {
		formula, err := SumMultiples(bases, limit)
		require.NoError(t, err)
		scan, err := ScanSum(bases, limit)
		require.NoError(t, err)
		assert.Equal(t, scan, formula, "limit %d", limit)
	}
}

func TestSumMultiplesIdempotent(t *testing.T) {
	bases := []uint64{3, 5}
	first, err := SumMultiples(bases, 1000)
	require.NoError(t, err)
	second, err := SumMultiples(bases, 1000)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []uint64{3, 5}, bases, "input must not be modified")
}

func TestSumMultiplesDoesNotReorderInput(t *testing.T) {
	bases := []uint64{5, 3, 5}
	_, err := SumMultiples(bases, 100)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 3, 5}, bases)
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		bases []uint64
		limit uint64
	}{
		{"zero limit", []uint64{3, 5}, 0},
		{"no bases", nil, 1000},
		{"empty bases", []uint64{}, 1000},
		{"zero base", []uint64{3, 0}, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SumMultiples(tt.bases, tt.limit)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
			_, err = ScanSum(tt.bases, tt.limit)
			assert.True(t, IsInvalidArgument(err))
		})
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := Validate([]uint64{3, 0}, 10)
	require.Error(t, err)
	assert.Equal(t, "invalid argument: bases must be positive (bases[1] is 0)", err.Error())

	err = Validate([]uint64{3}, 0)
	assert.Equal(t, "invalid argument: limit must be positive", err.Error())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []uint64{3, 5}, Normalize([]uint64{5, 3, 5, 3}))
	assert.Equal(t, []uint64{7}, Normalize([]uint64{7}))
}

func TestMinimalBases(t *testing.T) {
	assert.Equal(t, []uint64{2, 3}, minimalBases([]uint64{2, 3, 4, 6, 9}))
	assert.Equal(t, []uint64{1}, minimalBases([]uint64{1, 3, 5}))
}

func TestArith(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(0), Triangular(0))
	assert.Equal(uint64(1), Triangular(1))
	assert.Equal(uint64(55), Triangular(10))
	assert.Equal(uint64(500500), Triangular(1000))

	assert.Equal(uint64(333), CountBelow(1000, 3))
	assert.Equal(uint64(1), CountBelow(10, 5))
	assert.Equal(uint64(0), CountBelow(1, 3))

	assert.Equal(uint64(166833), MultiplesOf(3, 1000))
	assert.Equal(uint64(99500), MultiplesOf(5, 1000))
	assert.Equal(uint64(33165), MultiplesOf(15, 1000))

	assert.Equal(uint64(21), GCD(1071, 462))
	assert.Equal(uint64(5), GCD(0, 5))
	assert.Equal(uint64(15), LCM(3, 5))
	assert.Equal(uint64(12), LCM(4, 6))
	assert.Equal(uint64(math.MaxUint64), LCM(math.MaxUint64, math.MaxUint64-1))
}
