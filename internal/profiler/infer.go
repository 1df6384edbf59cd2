package profiler

import "github.com/datalytic/dataprof/internal/dataset"

// Infer classifies a column from its first non-missing cell, in row order.
// Classification order: intrinsic boolean, intrinsic number, date (intrinsic
// or a string that parses as one), string. A column of only missing cells
// defaults to string.
//
// Sampling a single cell is a deliberate heuristic: a mixed column such as
// 5 followed by "abc" is classified entirely by the 5, and later values are
// treated under that type for statistics. Keep this rule; a stricter policy
// changes every downstream count.
func Infer(values []dataset.Cell) InferredType {
	for _, c := range values {
		if c.IsMissing() {
			continue
		}
		switch c.Kind() {
		case dataset.KindBool:
			return TypeBoolean
		case dataset.KindNumber:
			return TypeNumber
		case dataset.KindDate:
			return TypeDate
		default:
			if _, ok := dataset.ParseDate(c.Text()); ok {
				return TypeDate
			}
			return TypeString
		}
	}
	return TypeString
}
