// Package diff implements the comparison engine: it aligns two tables
// of the same logical sheet into a common coordinate space and decides,
// cell by cell, whether the two sides hold the same value under
// configurable numeric tolerance and text case rules.
package diff

import (
	"math"
	"strings"

	"github.com/sheetops/sheetdiff/internal/table"
)

// Equal reports whether two cell values are considered the same.
// It is total over the value domain and never fails.
//
// The decision cascade, in priority order:
//  1. Two missing values (null marker or NaN) are equal.
//  2. If both sides coerce to a finite float64, they are equal iff
//     |a-b| <= tolerance. The interval is closed: tolerance 0 demands
//     exact numeric equality, and 5.0 vs 5.0+tolerance is a match.
//  3. Otherwise both sides are compared as trimmed text (missing
//     values read as ""), case-folded first when ignoreCase is set.
//
// Mixed-type cells like "5" vs 5 or "5.0" vs 5 land in step 2, so they
// are never reported as spurious differences.
func Equal(a, b table.Value, tolerance float64, ignoreCase bool) bool {
	if a.IsMissing() && b.IsMissing() {
		return true
	}

	if fa, ok := a.Float(); ok {
		if fb, ok := b.Float(); ok {
			return math.Abs(fa-fb) <= tolerance
		}
	}

	sa := strings.TrimSpace(a.String())
	sb := strings.TrimSpace(b.String())
	if ignoreCase {
		return strings.EqualFold(sa, sb)
	}
	return sa == sb
}
