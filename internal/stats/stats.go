package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice. Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// SampleStd computes the sample standard deviation (n-1 denominator).
// Returns 0 for fewer than two values.
func SampleStd(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	m := Mean(x)
	sum := 0.0
	for _, v := range x {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(x)-1))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Median returns the 0.5 quantile of the slice.
func Median(x []float64) float64 {
	return Quantile(x, 0.5)
}

// Quantile returns the q-th quantile (0 <= q <= 1) using linear interpolation
// between the two nearest ranks. The input is copied, not modified.
func Quantile(x []float64, q float64) float64 {
	if len(x) == 0 {
		return 0
	}
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[len(cp)-1]
	}
	pos := q * float64(len(cp)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return cp[lo]
	}
	w := pos - float64(lo)
	return cp[lo]*(1-w) + cp[hi]*w
}

// ValueCounts tallies occurrences of each distinct value. NaN entries are skipped.
func ValueCounts(x []float64) map[float64]int {
	counts := make(map[float64]int)
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		counts[v]++
	}
	return counts
}

// Observed returns the non-NaN values of the slice.
func Observed(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
