package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datalytic/dataprof/internal/dataset"
)

func TestCountDuplicates(t *testing.T) {
	ds := dataset.New([]string{"a", "b"}, []dataset.Row{
		{"a": dataset.Number(1), "b": dataset.String("x")},
		{"a": dataset.Number(1), "b": dataset.String("x")},
		{"a": dataset.Number(2), "b": dataset.String("y")},
		{"a": dataset.Number(1), "b": dataset.String("x")},
	})
	assert.Equal(t, 2, CountDuplicates(ds))
}

func TestCountDuplicatesNone(t *testing.T) {
	ds := dataset.New([]string{"a"}, []dataset.Row{
		{"a": dataset.Number(1)},
		{"a": dataset.Number(2)},
	})
	assert.Equal(t, 0, CountDuplicates(ds))
}

func TestCountDuplicatesKindAware(t *testing.T) {
	// The number 5 and the string "5" share a text form but are not
	// structural duplicates.
	ds := dataset.New([]string{"a"}, []dataset.Row{
		{"a": dataset.Number(5)},
		{"a": dataset.String("5")},
	})
	assert.Equal(t, 0, CountDuplicates(ds))
}

func TestCountDuplicatesMissingCells(t *testing.T) {
	// Rows that omit a key and rows that carry an explicit Missing cell
	// serialize identically.
	ds := dataset.New([]string{"a", "b"}, []dataset.Row{
		{"a": dataset.Number(1)},
		{"a": dataset.Number(1), "b": dataset.Missing()},
	})
	assert.Equal(t, 1, CountDuplicates(ds))
}

func TestCountDuplicatesEmpty(t *testing.T) {
	ds := dataset.New(nil, nil)
	assert.Equal(t, 0, CountDuplicates(ds))
}
