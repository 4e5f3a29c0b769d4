package table

import "sort"

// Row maps column names to cell values. Columns absent from the map
// read as the null marker via Table.Cell.
type Row map[string]Value

// Table is a rectangular grid of named-column rows. Columns holds the
// column order; every row is assumed to draw from the same column set.
// Tables with duplicate column names have undefined column selection
// (a known limitation inherited from the source format).
type Table struct {
	Columns []string
	Rows    []Row
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns.
func (t Table) ColumnCount() int { return len(t.Columns) }

// Cell returns the value at (row, column), or the null marker when the
// row index is out of range or the column is absent from that row.
func (t Table) Cell(row int, column string) Value {
	if row < 0 || row >= len(t.Rows) {
		return Null()
	}
	v, ok := t.Rows[row][column]
	if !ok {
		return Null()
	}
	return v
}

// Workbook maps sheet names to tables. Sheet names are unique within a
// workbook.
type Workbook map[string]Table

// Has reports whether the workbook contains the named sheet.
func (w Workbook) Has(name string) bool {
	_, ok := w[name]
	return ok
}

// SheetNames returns the sheet names sorted by string comparison.
func (w Workbook) SheetNames() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
