package profiler

import (
	"sort"
	"strings"

	"github.com/datalytic/dataprof/internal/dataset"
)

// CountDuplicates counts rows that are exact structural duplicates of an
// earlier row: duplicates = totalRows - distinctKeyCount. Rows are keyed
// by a canonical serialization with sorted column names, so two rows with
// the same pairs in different insertion order collide, and a kind tag
// keeps the number 5 from aliasing the string "5".
func CountDuplicates(ds *dataset.Dataset) int {
	if len(ds.Rows) == 0 {
		return 0
	}

	columns := append([]string(nil), ds.Columns...)
	sort.Strings(columns)

	seen := make(map[string]struct{}, len(ds.Rows))
	var b strings.Builder
	for _, row := range ds.Rows {
		b.Reset()
		for _, col := range columns {
			c := row[col]
			b.WriteString(col)
			b.WriteByte('=')
			b.WriteString(c.Kind().String())
			b.WriteByte(':')
			b.WriteString(c.Text())
			b.WriteByte(0x1f) // unit separator
		}
		seen[b.String()] = struct{}{}
	}

	return len(ds.Rows) - len(seen)
}
