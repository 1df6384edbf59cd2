package dataset

import (
	"strconv"
	"time"
)

// Kind identifies the semantic type carried by a Cell.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindString
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "missing"
	}
}

// Cell is a single tagged value. The zero value is Missing, so looking up
// an absent key in a Row yields Missing without special casing.
type Cell struct {
	kind Kind
	num  float64
	str  string
	b    bool
	t    time.Time
}

func Missing() Cell         { return Cell{} }
func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }
func String(s string) Cell  { return Cell{kind: KindString, str: s} }
func Bool(v bool) Cell      { return Cell{kind: KindBool, b: v} }
func Date(t time.Time) Cell { return Cell{kind: KindDate, t: t} }

func (c Cell) Kind() Kind { return c.kind }

// IsMissing reports whether the cell carries no value at all.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// IsBlank reports whether the cell should count as missing for completeness
// purposes. An empty string is a real String for type inference but a blank
// for completeness and value statistics.
func (c Cell) IsBlank() bool {
	return c.kind == KindMissing || (c.kind == KindString && c.str == "")
}

// AsNumber returns the numeric value and whether the cell is a Number.
func (c Cell) AsNumber() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// AsDate returns the time value and whether the cell is a Date.
func (c Cell) AsDate() (time.Time, bool) {
	if c.kind != KindDate {
		return time.Time{}, false
	}
	return c.t, true
}

// Text returns the canonical string form of the cell. Missing cells render
// as the empty string; dates without a time-of-day render as a plain date.
func (c Cell) Text() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindString:
		return c.str
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindDate:
		if c.t.Hour() == 0 && c.t.Minute() == 0 && c.t.Second() == 0 {
			return c.t.Format("2006-01-02")
		}
		return c.t.Format(time.RFC3339)
	default:
		return ""
	}
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
	"January 2, 2006",
}

// ParseDate attempts to read a calendar date from its textual form.
// Accepts ISO-8601 plus a few common textual layouts.
func ParseDate(value string) (time.Time, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseCell converts a raw CSV field into its intrinsic cell kind.
// Empty fields are Missing; "true"/"false" become Bool; integers and
// floats become Number; recognized date layouts become Date; everything
// else stays a String.
func ParseCell(value string) Cell {
	if value == "" {
		return Missing()
	}
	if value == "true" || value == "false" || value == "True" || value == "False" {
		return Bool(value == "true" || value == "True")
	}
	if n, err := strconv.Atoi(value); err == nil {
		return Number(float64(n))
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return Number(f)
	}
	if t, ok := ParseDate(value); ok {
		return Date(t)
	}
	return String(value)
}
