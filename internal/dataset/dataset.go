package dataset

import "fmt"

// Row maps column names to cells. An absent key reads as a Missing cell.
type Row map[string]Cell

// Dataset is an ordered sequence of rows sharing a column set. Columns
// fixes the iteration order; rows may omit keys (treated as Missing).
// The profiler borrows datasets read-only and never mutates rows.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New builds a dataset from an explicit column order and row slice.
func New(columns []string, rows []Row) *Dataset {
	return &Dataset{Columns: columns, Rows: rows}
}

// HasColumn reports whether name is part of the dataset's column set.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnValues returns the column's cells in row order. Rows without the
// key contribute a Missing cell, so the result always has len(d.Rows)
// entries.
func (d *Dataset) ColumnValues(name string) []Cell {
	values := make([]Cell, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values
}

// InvalidInputError signals genuinely malformed input: a dataset whose rows
// are not objects, a nil dataset, or an unknown target column. Degenerate
// but well-formed inputs (empty dataset, all-missing column) are not
// errors and return sentinel outputs instead.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
