package profiler

import (
	"sort"

	"github.com/datalytic/dataprof/internal/dataset"
)

// topValueLimit caps the categorical frequency table.
const topValueLimit = 5

// TopValues builds the value/frequency table of a non-numeric column:
// count by canonical string form, sort descending by count with ties kept
// in first-encountered order, take the top 5. No case or whitespace
// normalization; "X" and "x" are separate values.
func TopValues(values []dataset.Cell) []TopValue {
	counts := make(map[string]int)
	var order []string
	for _, c := range values {
		if c.IsBlank() {
			continue
		}
		s := c.Text()
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	entries := make([]TopValue, 0, len(order))
	for _, s := range order {
		entries = append(entries, TopValue{Value: s, Count: counts[s]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topValueLimit {
		entries = entries[:topValueLimit]
	}
	return entries
}

// uniqueCount counts distinct non-blank values by canonical string form.
func uniqueCount(values []dataset.Cell) int {
	distinct := make(map[string]struct{})
	for _, c := range values {
		if c.IsBlank() {
			continue
		}
		distinct[c.Text()] = struct{}{}
	}
	return len(distinct)
}
