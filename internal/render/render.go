// Package render prints profiler output for the terminal: labeled stat
// rows plus a bar-style histogram for a single column, and the four
// summary tiles plus issues list for a quality report. It performs no
// statistical computation of its own.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/datalytic/dataprof/internal/profiler"
)

// DefaultBarWidth is the histogram bar width in characters.
const DefaultBarWidth = 40

// WriteProfile renders a single-column profile.
func WriteProfile(w io.Writer, prof *profiler.ColumnProfile, barWidth int) {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}

	fmt.Fprintf(w, "Column: %s\n", prof.Name)
	fmt.Fprintf(w, "  Type:    %s\n", prof.Type)
	fmt.Fprintf(w, "  Count:   %s\n", humanize.Comma(int64(prof.Count)))
	fmt.Fprintf(w, "  Unique:  %s\n", humanize.Comma(int64(prof.Unique)))
	fmt.Fprintf(w, "  Missing: %s\n", humanize.Comma(int64(prof.Missing)))

	if prof.Numeric != nil {
		s := prof.Numeric
		fmt.Fprintf(w, "  Mean:    %.4g\n", s.Mean)
		fmt.Fprintf(w, "  Median:  %.4g\n", s.Median)
		fmt.Fprintf(w, "  StdDev:  %.4g\n", s.StdDev)
		fmt.Fprintf(w, "  Min:     %.4g\n", s.Min)
		fmt.Fprintf(w, "  Max:     %.4g\n", s.Max)
	} else if prof.Type == profiler.TypeNumber {
		fmt.Fprintln(w, "  (no numeric values)")
	}

	if len(prof.Histogram) > 0 {
		fmt.Fprintln(w, "\n  Histogram:")
		for _, bin := range prof.Histogram {
			bar := strings.Repeat("█", int(bin.RelativeHeightPercent/100*float64(barWidth)))
			fmt.Fprintf(w, "  [%10.4g, %10.4g) %-*s %d\n",
				bin.LowerBound, bin.UpperBound, barWidth, bar, bin.Count)
		}
	}

	if len(prof.TopValues) > 0 {
		fmt.Fprintln(w, "\n  Top values:")
		for _, tv := range prof.TopValues {
			fmt.Fprintf(w, "    %-30s %s\n", tv.Value, humanize.Comma(int64(tv.Count)))
		}
	}

	if prof.Outliers > 0 {
		fmt.Fprintf(w, "\n  Outliers: %d\n", prof.Outliers)
	}
}

// WriteReport renders a whole-dataset quality report as four summary
// tiles followed by the issues list.
func WriteReport(w io.Writer, report *profiler.QualityReport) {
	fmt.Fprintln(w, "=== DATA QUALITY REPORT ===")
	fmt.Fprintf(w, "Rows: %s  Columns: %d\n",
		humanize.Comma(int64(report.RowCount)), report.ColumnCount)

	if report.RowCount == 0 {
		fmt.Fprintln(w, "No data: nothing to score.")
		return
	}

	fmt.Fprintf(w, "Score: %d/100\n\n", report.Score)

	fmt.Fprintf(w, "Completeness:  %.1f%% (%s missing cells)\n",
		(1-report.MissingRate)*100, humanize.Comma(int64(report.MissingCells)))
	fmt.Fprintf(w, "Duplicates:    %s row(s)\n", humanize.Comma(int64(report.DuplicateRows)))
	fmt.Fprintf(w, "Outliers:      %s value(s)\n", humanize.Comma(int64(report.OutlierCount)))
	fmt.Fprintf(w, "Types:         %s\n", formatTypeDistribution(report.TypeDistribution))

	if len(report.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, issue := range report.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	} else {
		fmt.Fprintln(w, "\nNo issues detected.")
	}
}

func formatTypeDistribution(dist map[profiler.InferredType]int) string {
	if len(dist) == 0 {
		return "none"
	}
	types := make([]string, 0, len(dist))
	for t := range dist {
		types = append(types, string(t))
	}
	sort.Strings(types)

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s=%d", t, dist[profiler.InferredType(t)]))
	}
	return strings.Join(parts, ", ")
}
