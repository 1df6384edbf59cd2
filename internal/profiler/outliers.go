package profiler

import "sort"

// CountOutliers counts values strictly outside the interquartile-range
// fence [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Quartiles are index-based, not
// interpolated: Q1 = sorted[floor(n*0.25)], Q3 = sorted[floor(n*0.75)].
// The fence is recomputed from the given sample on every call.
func CountOutliers(nums []float64) int {
	n := len(nums)
	if n == 0 {
		return 0
	}

	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	q1 := sorted[int(float64(n)*0.25)]
	q3 := sorted[int(float64(n)*0.75)]
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	count := 0
	for _, v := range nums {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
