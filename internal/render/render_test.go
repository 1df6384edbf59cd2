package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalytic/dataprof/internal/dataset"
	"github.com/datalytic/dataprof/internal/profiler"
)

func TestWriteProfileNumeric(t *testing.T) {
	ds := dataset.New([]string{"a"}, []dataset.Row{
		{"a": dataset.Number(1)},
		{"a": dataset.Number(2)},
		{"a": dataset.Number(3)},
	})
	prof, err := profiler.New().ProfileColumn(ds, "a")
	require.NoError(t, err)

	var buf strings.Builder
	WriteProfile(&buf, prof, 20)
	out := buf.String()

	assert.Contains(t, out, "Column: a")
	assert.Contains(t, out, "Type:    number")
	assert.Contains(t, out, "Histogram:")
	assert.Contains(t, out, "█")
}

func TestWriteProfileCategorical(t *testing.T) {
	ds := dataset.New([]string{"c"}, []dataset.Row{
		{"c": dataset.String("x")},
		{"c": dataset.String("x")},
		{"c": dataset.String("y")},
	})
	prof, err := profiler.New().ProfileColumn(ds, "c")
	require.NoError(t, err)

	var buf strings.Builder
	WriteProfile(&buf, prof, 0)
	out := buf.String()

	assert.Contains(t, out, "Top values:")
	assert.Contains(t, out, "x")
	assert.NotContains(t, out, "Histogram:")
}

func TestWriteReport(t *testing.T) {
	ds := dataset.New([]string{"a"}, []dataset.Row{
		{"a": dataset.String("x")},
		{"a": dataset.String("x")},
	})
	report, err := profiler.New().Assess(ds)
	require.NoError(t, err)

	var buf strings.Builder
	WriteReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "Completeness:")
	assert.Contains(t, out, "duplicate")
}

func TestWriteReportEmpty(t *testing.T) {
	report, err := profiler.New().Assess(dataset.New(nil, nil))
	require.NoError(t, err)

	var buf strings.Builder
	WriteReport(&buf, report)

	assert.Contains(t, buf.String(), "No data")
	assert.NotContains(t, buf.String(), "Score:")
}
