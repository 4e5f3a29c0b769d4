package diff

import (
	"sort"

	"github.com/sheetops/sheetdiff/internal/table"
)

// Shape records the pre-alignment dimensions of one side. Sheet
// summaries report these original counts, not the padded aligned
// shape.
type Shape struct {
	Rows int
	Cols int
}

// AlignedPair holds two tables reshaped to an identical coordinate
// space: the same ordered column set and the same row count. Cells
// that were absent from a side (missing column, or a row past the end
// of the shorter table) hold the null marker.
type AlignedPair struct {
	// Columns is the sorted union of both sides' column names. The
	// order is a total order by string comparison, independent of
	// either input's original column order.
	Columns []string

	// Rows is max(left row count, right row count).
	Rows int

	// Left and Right are dense grids of Rows x len(Columns) cells.
	Left  [][]table.Value
	Right [][]table.Value

	// LeftShape and RightShape are the original input dimensions.
	LeftShape  Shape
	RightShape Shape
}

// Align reshapes a (left, right) table pair into an AlignedPair.
//
// Rows are aligned by positional index only: row i of left is compared
// against row i of right regardless of content. This is deliberate —
// the engine assumes both exports share a meaningful natural order and
// performs no key-based row matching.
func Align(left, right table.Table) AlignedPair {
	columns := columnUnion(left.Columns, right.Columns)

	rows := left.RowCount()
	if right.RowCount() > rows {
		rows = right.RowCount()
	}

	return AlignedPair{
		Columns:    columns,
		Rows:       rows,
		Left:       grid(left, columns, rows),
		Right:      grid(right, columns, rows),
		LeftShape:  Shape{Rows: left.RowCount(), Cols: left.ColumnCount()},
		RightShape: Shape{Rows: right.RowCount(), Cols: right.ColumnCount()},
	}
}

// columnUnion returns the deduplicated union of two column lists,
// sorted by string comparison.
func columnUnion(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				union = append(union, name)
			}
		}
	}
	sort.Strings(union)
	return union
}

// grid reindexes a table to the union column order and pads it to the
// target row count with null markers.
func grid(t table.Table, columns []string, rows int) [][]table.Value {
	g := make([][]table.Value, rows)
	for r := 0; r < rows; r++ {
		row := make([]table.Value, len(columns))
		for c, name := range columns {
			row[c] = t.Cell(r, name)
		}
		g[r] = row
	}
	return g
}
