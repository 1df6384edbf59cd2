package profiler

import (
	"math"
	"sort"

	"github.com/datalytic/dataprof/internal/dataset"
)

// numericValues extracts the cells that actually carry numbers. A column
// classified as number can still contain non-numeric stragglers; those are
// filtered here rather than coerced, so Count may be smaller than the
// column's non-missing count.
func numericValues(values []dataset.Cell) []float64 {
	var nums []float64
	for _, c := range values {
		if v, ok := c.AsNumber(); ok {
			nums = append(nums, v)
		}
	}
	return nums
}

// Describe computes count, mean, median, population standard deviation,
// min and max over a numeric sample. Returns nil for an empty sample.
//
// The median of an even-length sample is the upper-middle element
// (sorted[n/2]), not the interpolated average, and the standard deviation
// divides by n, not n-1.
func Describe(nums []float64) *NumericSummary {
	n := len(nums)
	if n == 0 {
		return nil
	}

	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	sum := 0.0
	min, max := nums[0], nums[0]
	for _, v := range nums {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range nums {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return &NumericSummary{
		Count:  n,
		Mean:   mean,
		Median: sorted[n/2],
		StdDev: math.Sqrt(variance),
		Min:    min,
		Max:    max,
	}
}
