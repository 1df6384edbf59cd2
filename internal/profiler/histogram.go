package profiler

// HistogramBins is the fixed number of equal-width bins per numeric column.
const HistogramBins = 10

// BuildHistogram partitions nums into HistogramBins equal-width bins over
// [min, max]. min and max are the already-computed column bounds; they are
// reused, never recomputed. Each value lands in
// floor((v-min)/binSize), clamped to the last bin so the maximum (and any
// floating-point overshoot) is absorbed rather than dropped. When
// max == min the bin width is zero and every value falls into bin 0.
//
// RelativeHeightPercent is count/maxBinCount*100, so the tallest bin is
// always 100 regardless of total count.
func BuildHistogram(nums []float64, min, max float64) []HistogramBin {
	if len(nums) == 0 {
		return nil
	}

	binSize := (max - min) / float64(HistogramBins)
	bins := make([]HistogramBin, HistogramBins)
	for i := range bins {
		bins[i].LowerBound = min + float64(i)*binSize
		bins[i].UpperBound = min + float64(i+1)*binSize
	}
	bins[HistogramBins-1].UpperBound = max

	for _, v := range nums {
		idx := 0
		if binSize > 0 {
			idx = int((v - min) / binSize)
			if idx > HistogramBins-1 {
				idx = HistogramBins - 1
			}
		}
		bins[idx].Count++
	}

	maxCount := 0
	for i := range bins {
		if bins[i].Count > maxCount {
			maxCount = bins[i].Count
		}
	}
	for i := range bins {
		bins[i].RelativeHeightPercent = float64(bins[i].Count) / float64(maxCount) * 100
	}

	return bins
}
