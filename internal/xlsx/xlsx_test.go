package xlsx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sheetops/sheetdiff/internal/diff"
	"github.com/sheetops/sheetdiff/internal/table"
	"github.com/xuri/excelize/v2"
)

// sheetData is one sheet's raw content for test workbook construction.
type sheetData struct {
	name string
	rows [][]any
}

// buildWorkbook assembles an xlsx document in memory.
func buildWorkbook(t *testing.T, sheets []sheetData) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				t.Fatalf("create sheet %s: %v", sheet.name, err)
			}
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbookTypes(t *testing.T) {
	data := buildWorkbook(t, []sheetData{{
		name: "Data",
		rows: [][]any{
			{"id", "val", "flag"},
			{1, 5.5, "yes"},
			{2, nil, true},
		},
	}})

	wb, err := ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseWorkbook returned error: %v", err)
	}

	sheet, ok := wb["Data"]
	if !ok {
		t.Fatalf("expected sheet Data, got %v", wb.SheetNames())
	}

	wantCols := []string{"id", "val", "flag"}
	if len(sheet.Columns) != len(wantCols) {
		t.Fatalf("expected %d columns, got %d", len(wantCols), len(sheet.Columns))
	}
	for i, name := range wantCols {
		if sheet.Columns[i] != name {
			t.Errorf("Columns[%d] = %q, want %q", i, sheet.Columns[i], name)
		}
	}

	if sheet.RowCount() != 2 {
		t.Fatalf("expected 2 data rows, got %d", sheet.RowCount())
	}

	if got := sheet.Cell(0, "id"); !got.Equal(table.Int(1)) {
		t.Errorf("cell (0, id) = %v, want Int(1)", got)
	}
	if got := sheet.Cell(0, "val"); !got.Equal(table.Float(5.5)) {
		t.Errorf("cell (0, val) = %v, want Float(5.5)", got)
	}
	if got := sheet.Cell(0, "flag"); !got.Equal(table.Text("yes")) {
		t.Errorf("cell (0, flag) = %v, want Text(yes)", got)
	}
	if got := sheet.Cell(1, "val"); !got.IsNull() {
		t.Errorf("cell (1, val) = %v, want null", got)
	}
	if got := sheet.Cell(1, "flag"); !got.Equal(table.Bool(true)) {
		t.Errorf("cell (1, flag) = %v, want Bool(true)", got)
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("this is not a workbook"))
	if err == nil {
		t.Fatal("expected a parse error for garbage input")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestRenderReportRoundTrip(t *testing.T) {
	rep := &diff.Report{
		Records: []diff.Record{{
			Sheet:    "Sheet1",
			RowIndex: 1,
			ExcelRow: 2,
			Column:   "val",
			Left:     table.Int(10),
			Right:    table.Int(11),
		}},
		Summaries: []diff.Summary{
			{Sheet: "Sheet1", LeftRows: 2, RightRows: 2, LeftCols: 2, RightCols: 2, DiffCount: 1},
			{Sheet: "Extra", Note: diff.NoteOnlyInRight},
		},
	}

	out, err := RenderReport(rep)
	if err != nil {
		t.Fatalf("RenderReport returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("rendered report does not reopen: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != DiffSheet || sheets[1] != SummarySheet {
		t.Fatalf("expected sheets [differences summary], got %v", sheets)
	}

	diffRows, err := f.GetRows(DiffSheet)
	if err != nil {
		t.Fatalf("read differences sheet: %v", err)
	}
	if len(diffRows) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(diffRows))
	}
	wantRecord := []string{"Sheet1", "1", "2", "val", "10", "11"}
	for i, want := range wantRecord {
		if diffRows[1][i] != want {
			t.Errorf("differences row cell %d = %q, want %q", i, diffRows[1][i], want)
		}
	}

	sumRows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("read summary sheet: %v", err)
	}
	if len(sumRows) != 3 {
		t.Fatalf("expected header + 2 summaries, got %d rows", len(sumRows))
	}
	if sumRows[1][0] != "Sheet1" || sumRows[1][5] != "1" {
		t.Errorf("comparison summary row = %v", sumRows[1])
	}
	// Presence-only rows leave the count cells blank and set the note.
	if sumRows[2][0] != "Extra" {
		t.Errorf("presence summary sheet = %q, want Extra", sumRows[2][0])
	}
	if got := sumRows[2][len(sumRows[2])-1]; got != diff.NoteOnlyInRight {
		t.Errorf("presence summary note = %q, want %q", got, diff.NoteOnlyInRight)
	}
}

func TestRenderReportPlaceholderWhenNoDiffs(t *testing.T) {
	rep := &diff.Report{
		Summaries: []diff.Summary{
			{Sheet: "Sheet1", LeftRows: 1, RightRows: 1, LeftCols: 1, RightCols: 1},
		},
	}

	out, err := RenderReport(rep)
	if err != nil {
		t.Fatalf("RenderReport returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("rendered report does not reopen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DiffSheet)
	if err != nil {
		t.Fatalf("read differences sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected placeholder header + row, got %d rows", len(rows))
	}
	if rows[0][0] != "note" || rows[1][0] != "no differences found" {
		t.Errorf("placeholder content = %v", rows)
	}
}

func TestParseWorkbookEmptyHeaderNames(t *testing.T) {
	data := buildWorkbook(t, []sheetData{{
		name: "Data",
		rows: [][]any{
			{"a", nil, "c"},
			{1, 2, 3},
		},
	}})

	wb, err := ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseWorkbook returned error: %v", err)
	}

	cols := wb["Data"].Columns
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d: %v", len(cols), cols)
	}
	if cols[1] != "column_2" {
		t.Errorf("unnamed column = %q, want column_2", cols[1])
	}
}
