// Package xlsx reads and writes workbook files, bridging the xlsx file
// format and the in-memory table model. Parsing mirrors the loose
// typing of spreadsheet data: the first row of each sheet is the
// header, and cell content is inferred as null, integer, float,
// boolean, or text.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sheetops/sheetdiff/internal/table"
	"github.com/xuri/excelize/v2"
)

// ParseError reports that supplied bytes could not be read as a valid
// workbook. The whole request is rejected; no partial parse is
// attempted.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse workbook: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ParseWorkbook reads an xlsx document and returns one table per
// sheet. Sheets with no rows parse as empty tables.
func ParseWorkbook(r io.Reader) (table.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	defer f.Close()

	wb := make(table.Workbook)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &ParseError{Cause: err}
		}
		wb[sheet] = tableFromRows(rows)
	}
	return wb, nil
}

// tableFromRows converts raw sheet content into a Table. The first row
// supplies column names; unnamed columns get a positional placeholder.
// Data rows shorter than the header read as null in the missing
// columns.
func tableFromRows(rows [][]string) table.Table {
	if len(rows) == 0 {
		return table.Table{}
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		columns[i] = name
	}

	t := table.Table{Columns: columns, Rows: make([]table.Row, 0, len(rows)-1)}
	for _, raw := range rows[1:] {
		row := make(table.Row, len(columns))
		for i, name := range columns {
			if i < len(raw) {
				row[name] = parseCell(raw[i])
			} else {
				row[name] = table.Null()
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// parseCell infers the value type of one cell's formatted content.
func parseCell(s string) table.Value {
	if s == "" {
		return table.Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return table.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return table.Float(f)
	}
	// Boolean cells render as TRUE/FALSE.
	if strings.EqualFold(s, "true") {
		return table.Bool(true)
	}
	if strings.EqualFold(s, "false") {
		return table.Bool(false)
	}
	return table.Text(s)
}
