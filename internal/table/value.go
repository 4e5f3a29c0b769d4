// Package table defines the in-memory model for loosely typed
// spreadsheet data: cell values, rectangular tables of named columns,
// and workbooks mapping sheet names to tables.
//
// Source workbooks carry no schema, so a cell value is an explicit
// tagged union over the types a spreadsheet can hold rather than an
// interface{} left to implicit coercion. The zero Value is the null
// marker used for cells that have no data at a coordinate.
package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which member of the value union is set.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
)

// Value is a tagged union over spreadsheet cell types.
// The zero value is the null marker.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null marker.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the union tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null marker.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsMissing reports whether v represents "no data": the null marker or
// a floating-point NaN from the source workbook. The two are distinct
// values but equality-compatible.
func (v Value) IsMissing() bool {
	return v.kind == KindNull || (v.kind == KindFloat && math.IsNaN(v.f))
}

// Float attempts numeric coercion to float64. It succeeds for integer
// and finite floating-point values, for booleans (1 or 0), and for
// text whose trimmed content parses as a number.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		return v.f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String returns the canonical text representation: the empty string
// for missing values, "true"/"false" for booleans, and the shortest
// exact decimal form for numbers.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if math.IsNaN(v.f) {
			return ""
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// Native returns the value as a plain Go type (nil, bool, int64,
// float64, or string) for handing to a workbook writer.
func (v Value) Native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		if math.IsNaN(v.f) {
			return nil
		}
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}

// Equal reports raw structural equality of two values: same kind, same
// content. Two NaN floats compare equal here so the comparison is
// reflexive.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case KindText:
		return v.s == o.s
	default:
		return true
	}
}
