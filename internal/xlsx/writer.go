package xlsx

import (
	"fmt"

	"github.com/sheetops/sheetdiff/internal/diff"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the rendered report workbook.
const (
	DiffSheet    = "differences"
	SummarySheet = "summary"
)

// FileName is the download name for a rendered report.
const FileName = "differences.xlsx"

// ContentType is the MIME type for xlsx documents.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RenderReport serializes a comparison report as an xlsx workbook with
// a differences sheet and a summary sheet. When the report holds no
// records the differences sheet still gets a single placeholder row, so
// downstream consumers never see an ambiguous header-only file.
func RenderReport(rep *diff.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DiffSheet); err != nil {
		return nil, fmt.Errorf("rename differences sheet: %w", err)
	}
	if err := writeDifferences(f, rep.Records); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummaries(f, rep.Summaries); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize report workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDifferences(f *excelize.File, records []diff.Record) error {
	if len(records) == 0 {
		if err := setRow(f, DiffSheet, 1, []any{"note"}); err != nil {
			return err
		}
		return setRow(f, DiffSheet, 2, []any{"no differences found"})
	}

	header := []any{"sheet", "row_index", "excel_row", "column", "left_value", "right_value"}
	if err := setRow(f, DiffSheet, 1, header); err != nil {
		return err
	}
	for i, rec := range records {
		row := []any{
			rec.Sheet,
			rec.RowIndex,
			rec.ExcelRow,
			rec.Column,
			rec.Left.Native(),
			rec.Right.Native(),
		}
		if err := setRow(f, DiffSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaries(f *excelize.File, summaries []diff.Summary) error {
	header := []any{"sheet", "left_rows", "right_rows", "left_cols", "right_cols", "diff_count", "note"}
	if err := setRow(f, SummarySheet, 1, header); err != nil {
		return err
	}
	for i, s := range summaries {
		var row []any
		if s.PresenceOnly() {
			// Count columns stay blank for sheets that were not compared.
			row = []any{s.Sheet, nil, nil, nil, nil, nil, s.Note}
		} else {
			row = []any{s.Sheet, s.LeftRows, s.RightRows, s.LeftCols, s.RightCols, s.DiffCount, nil}
		}
		if err := setRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
