package profiler

// InferredType is a column's semantic classification. It is decided by a
// single deterministic rule (see Infer), not a statistical vote.
type InferredType string

const (
	TypeNumber  InferredType = "number"
	TypeString  InferredType = "string"
	TypeBoolean InferredType = "boolean"
	TypeDate    InferredType = "date"
)

// NumericSummary holds the descriptive statistics of a column's numeric
// values. A nil summary means the column had no numeric values at all,
// which callers must treat as distinct from zero-valued statistics.
type NumericSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// TopValue is one entry of a categorical frequency table.
type TopValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// HistogramBin is one of the fixed-count equal-width bins of a numeric
// column. Upper bounds are exclusive except for the final bin, which
// absorbs the maximum. RelativeHeightPercent is scaled against the
// tallest bin, so the tallest bin always reads 100.
type HistogramBin struct {
	LowerBound            float64 `json:"lowerBound"`
	UpperBound            float64 `json:"upperBound"`
	Count                 int     `json:"count"`
	RelativeHeightPercent float64 `json:"relativeHeightPercent"`
}

// ColumnProfile is the full statistical summary of a single column.
// Profiles are created fresh on every run and never mutated afterwards.
type ColumnProfile struct {
	Name    string       `json:"name"`
	Type    InferredType `json:"type"`
	Count   int          `json:"count"`
	Unique  int          `json:"unique"`
	Missing int          `json:"missing"`

	// Numeric columns only.
	Numeric   *NumericSummary `json:"numeric,omitempty"`
	Histogram []HistogramBin  `json:"histogram,omitempty"`
	Outliers  int             `json:"outliers"`

	// Non-numeric columns only.
	TopValues []TopValue `json:"topValues,omitempty"`
}

// QualityReport is the dataset-wide aggregation of every column profile
// plus duplicate and outlier counts. It is recomputed wholesale on every
// call. A report with RowCount == 0 carries no score: "no data" is a
// distinct state from "a 0% score".
type QualityReport struct {
	RowCount         int                  `json:"rowCount"`
	ColumnCount      int                  `json:"columnCount"`
	Score            int                  `json:"score"`
	MissingCells     int                  `json:"missingCells"`
	MissingRate      float64              `json:"missingRate"`
	DuplicateRows    int                  `json:"duplicateRows"`
	OutlierCount     int                  `json:"outlierCount"`
	TypeDistribution map[InferredType]int `json:"typeDistribution"`
	Issues           []string             `json:"issues"`
}
