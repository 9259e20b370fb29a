package floats

import "sort"

func Average(arr []float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// Percentile returns the p-th percentile (0 <= p <= 100) of arr using linear
// interpolation between order statistics: the rank is p/100*(n-1) and the
// result interpolates between the two adjacent sorted values. This matches
// the "linear" rule used by most statistics packages, so Percentile([1..10], 5)
// is 1.45, not 1.
//
// The input is not modified. Returns NaN-free results only for non-empty arr;
// the caller checks emptiness.
func Percentile(arr []float64, p float64) float64 {
	sorted := make([]float64, len(arr))
	copy(sorted, arr)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100.0 * float64(len(sorted)-1)
	lo := int(rank)
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func Min(arr []float64) float64 {
	m := arr[0]
	for _, a := range arr[1:] {
		if a < m {
			m = a
		}
	}
	return m
}

func Max(arr []float64) float64 {
	m := arr[0]
	for _, a := range arr[1:] {
		if a > m {
			m = a
		}
	}
	return m
}
