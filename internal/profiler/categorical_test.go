package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datalytic/dataprof/internal/dataset"
)

func strCells(values ...string) []dataset.Cell {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		cells[i] = dataset.String(v)
	}
	return cells
}

func TestTopValuesOrdering(t *testing.T) {
	got := TopValues(strCells("x", "x", "y"))
	assert.Equal(t, []TopValue{{Value: "x", Count: 2}, {Value: "y", Count: 1}}, got)
}

func TestTopValuesTiesKeepFirstEncounteredOrder(t *testing.T) {
	got := TopValues(strCells("b", "a", "b", "a", "c"))
	assert.Equal(t, []TopValue{
		{Value: "b", Count: 2},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
	}, got)
}

func TestTopValuesCaseSensitive(t *testing.T) {
	got := TopValues(strCells("X", "x"))
	assert.Len(t, got, 2)
}

func TestTopValuesLimit(t *testing.T) {
	got := TopValues(strCells("a", "a", "a", "a", "a", "a",
		"b", "b", "b", "b", "b",
		"c", "c", "c", "c",
		"d", "d", "d",
		"e", "e",
		"f"))
	assert.Len(t, got, 5)
	assert.Equal(t, "a", got[0].Value)
	assert.Equal(t, "e", got[4].Value)
}

func TestTopValuesSkipsBlanks(t *testing.T) {
	cells := append(strCells("x", ""), dataset.Missing())
	got := TopValues(cells)
	assert.Equal(t, []TopValue{{Value: "x", Count: 1}}, got)
}

func TestTopValuesMixedKindsUseTextForm(t *testing.T) {
	cells := []dataset.Cell{dataset.Bool(true), dataset.Bool(true), dataset.Bool(false)}
	got := TopValues(cells)
	assert.Equal(t, []TopValue{{Value: "true", Count: 2}, {Value: "false", Count: 1}}, got)
}

func TestUniqueCount(t *testing.T) {
	cells := append(strCells("x", "y", "x", ""), dataset.Missing())
	assert.Equal(t, 2, uniqueCount(cells))
}
