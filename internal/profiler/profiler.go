package profiler

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/datalytic/dataprof/internal/dataset"
)

// missingIssueThreshold is the per-column missing rate above which an
// issue is emitted. Strictly greater: exactly 30% missing is not flagged.
const missingIssueThreshold = 0.30

// Profiler computes column profiles and whole-dataset quality reports.
// It holds no state between calls; every invocation recomputes from
// scratch, so repeated calls over an unchanged dataset yield identical
// results.
type Profiler struct {
	workers int
}

// New returns a profiler that fans column work out across the CPUs.
func New() *Profiler {
	return NewWithWorkers(runtime.NumCPU())
}

// NewWithWorkers returns a profiler with an explicit column-worker limit.
func NewWithWorkers(workers int) *Profiler {
	if workers < 1 {
		workers = 1
	}
	return &Profiler{workers: workers}
}

// ProfileColumn profiles a single named column of the dataset.
// An unknown column or nil dataset is malformed input.
func (p *Profiler) ProfileColumn(ds *dataset.Dataset, column string) (*ColumnProfile, error) {
	if ds == nil {
		return nil, &dataset.InvalidInputError{Reason: "nil dataset"}
	}
	if !ds.HasColumn(column) {
		return nil, &dataset.InvalidInputError{Reason: fmt.Sprintf("unknown column %q", column)}
	}
	return profileColumn(ds, column), nil
}

// profileColumn computes the full profile of one column. Each call owns
// its intermediate slices exclusively; nothing is shared across columns.
func profileColumn(ds *dataset.Dataset, name string) *ColumnProfile {
	values := ds.ColumnValues(name)

	prof := &ColumnProfile{
		Name: name,
		Type: Infer(values),
	}
	for _, c := range values {
		if c.IsBlank() {
			prof.Missing++
		}
	}
	prof.Count = len(values) - prof.Missing
	prof.Unique = uniqueCount(values)

	if prof.Type == TypeNumber {
		nums := numericValues(values)
		prof.Numeric = Describe(nums)
		if prof.Numeric != nil {
			prof.Histogram = BuildHistogram(nums, prof.Numeric.Min, prof.Numeric.Max)
			prof.Outliers = CountOutliers(nums)
		}
	} else {
		prof.TopValues = TopValues(values)
	}

	return prof
}

// Assess profiles every column, counts duplicate rows, and reduces
// everything into a QualityReport.
//
// Column profiles are independent and run concurrently; duplicate
// detection and the final reduction run after all column work completes.
// An empty dataset returns a zero-value report (RowCount == 0) with no
// score rather than an error.
func (p *Profiler) Assess(ds *dataset.Dataset) (*QualityReport, error) {
	if ds == nil {
		return nil, &dataset.InvalidInputError{Reason: "nil dataset"}
	}

	report := &QualityReport{
		RowCount:         len(ds.Rows),
		ColumnCount:      len(ds.Columns),
		TypeDistribution: make(map[InferredType]int),
		Issues:           []string{},
	}
	if report.RowCount == 0 || report.ColumnCount == 0 {
		return report, nil
	}

	profiles := make([]*ColumnProfile, len(ds.Columns))
	g := new(errgroup.Group)
	g.SetLimit(p.workers)
	for i, name := range ds.Columns {
		i, name := i, name
		g.Go(func() error {
			profiles[i] = profileColumn(ds, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.DuplicateRows = CountDuplicates(ds)

	for _, prof := range profiles {
		report.MissingCells += prof.Missing
		report.OutlierCount += prof.Outliers
		report.TypeDistribution[prof.Type]++
	}
	report.MissingRate = float64(report.MissingCells) / float64(report.RowCount*report.ColumnCount)

	for _, prof := range profiles {
		columnMissingRate := float64(prof.Missing) / float64(report.RowCount)
		if columnMissingRate > missingIssueThreshold {
			report.Issues = append(report.Issues,
				fmt.Sprintf("Column %q has %.1f%% missing values", prof.Name, columnMissingRate*100))
		}
		if prof.Outliers > 0 {
			report.Issues = append(report.Issues,
				fmt.Sprintf("Column %q has %d outlier value(s)", prof.Name, prof.Outliers))
		}
	}
	if report.DuplicateRows > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Dataset contains %d duplicate row(s)", report.DuplicateRows))
	}

	completeness := (1 - report.MissingRate) * 100
	duplicateScore := (1 - float64(report.DuplicateRows)/float64(report.RowCount)) * 100
	report.Score = int(math.Round((completeness + duplicateScore) / 2))

	return report, nil
}
