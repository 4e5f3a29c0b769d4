package diff

import (
	"errors"
	"sort"

	"github.com/sheetops/sheetdiff/internal/table"
)

// ErrNoSheets is returned when an explicit sheet selection names no
// sheet present in either workbook. The request fails rather than
// silently producing an empty report.
var ErrNoSheets = errors.New("no requested sheets found in either workbook")

// Options control a comparison run.
type Options struct {
	// Sheets restricts the comparison to the named sheets, in the
	// given order, filtered to those present in at least one workbook.
	// Empty means all sheets present in either workbook, sorted by
	// name.
	Sheets []string

	// Tolerance is the closed-interval threshold for numeric equality.
	// Callers are expected to pass a non-negative value; invalid user
	// input is normalized to 0 before it reaches the engine.
	Tolerance float64

	// IgnoreCase enables case-folded text comparison.
	IgnoreCase bool
}

// Report is the full result of comparing two workbooks: cell records
// ordered sheet-major, then row-major, then column-order-major, and
// one summary per considered sheet in processing order.
type Report struct {
	Records   []Record
	Summaries []Summary
}

// DiffCount returns the total number of cell differences across all
// sheets.
func (r *Report) DiffCount() int { return len(r.Records) }

// Compare drives the engine over two workbooks. Sheets present in both
// are aligned and reduced; sheets present on one side only get a
// presence-only summary and no records. Each call is a pure,
// independent computation with no shared state.
func Compare(left, right table.Workbook, opts Options) (*Report, error) {
	sheets, err := selectSheets(left, right, opts.Sheets)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, sheet := range sheets {
		inLeft := left.Has(sheet)
		inRight := right.Has(sheet)

		switch {
		case inLeft && !inRight:
			report.Summaries = append(report.Summaries, Summary{Sheet: sheet, Note: NoteOnlyInLeft})
		case !inLeft && inRight:
			report.Summaries = append(report.Summaries, Summary{Sheet: sheet, Note: NoteOnlyInRight})
		default:
			pair := Align(left[sheet], right[sheet])
			records, summary := Reduce(pair, sheet, opts.Tolerance, opts.IgnoreCase)
			report.Records = append(report.Records, records...)
			report.Summaries = append(report.Summaries, summary)
		}
	}
	return report, nil
}

// selectSheets resolves the sheet selection policy: an explicit
// non-empty request is filtered to sheets present in at least one
// workbook (erroring when nothing survives the filter); otherwise the
// sorted union of both workbooks' sheet names is used.
func selectSheets(left, right table.Workbook, requested []string) ([]string, error) {
	if len(requested) > 0 {
		var sheets []string
		for _, name := range requested {
			if left.Has(name) || right.Has(name) {
				sheets = append(sheets, name)
			}
		}
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		return sheets, nil
	}

	seen := make(map[string]bool, len(left)+len(right))
	var union []string
	for _, wb := range []table.Workbook{left, right} {
		for name := range wb {
			if !seen[name] {
				seen[name] = true
				union = append(union, name)
			}
		}
	}
	sort.Strings(union)
	return union, nil
}
