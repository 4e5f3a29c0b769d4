package diff

import "github.com/sheetops/sheetdiff/internal/table"

// Record is one reported cell-level inequality. RowIndex is zero-based;
// ExcelRow is the same coordinate one-based, matching how spreadsheet
// applications number rows.
type Record struct {
	Sheet    string
	RowIndex int
	ExcelRow int
	Column   string
	Left     table.Value
	Right    table.Value
}

// Presence notes for sheets that exist on only one side. The note
// names the side the sheet is present in.
const (
	NoteOnlyInLeft  = "only_in_left"
	NoteOnlyInRight = "only_in_right"
)

// Summary aggregates one sheet's comparison. For sheets compared on
// both sides, Note is empty and the counts reflect the original
// pre-alignment shapes. For one-sided sheets, Note is set and the
// counts are meaningless.
type Summary struct {
	Sheet     string
	LeftRows  int
	RightRows int
	LeftCols  int
	RightCols int
	DiffCount int
	Note      string
}

// PresenceOnly reports whether this summary records a sheet that was
// present in only one workbook and therefore was not compared.
func (s Summary) PresenceOnly() bool { return s.Note != "" }

// Reduce walks the aligned coordinate space row-major and collects a
// Record for every cell pair the equality predicate rejects, plus the
// sheet's Summary. DiffCount always equals the number of records
// returned.
func Reduce(pair AlignedPair, sheet string, tolerance float64, ignoreCase bool) ([]Record, Summary) {
	var records []Record

	for r := 0; r < pair.Rows; r++ {
		for c, column := range pair.Columns {
			left := pair.Left[r][c]
			right := pair.Right[r][c]
			if Equal(left, right, tolerance, ignoreCase) {
				continue
			}
			records = append(records, Record{
				Sheet:    sheet,
				RowIndex: r,
				ExcelRow: r + 1,
				Column:   column,
				Left:     left,
				Right:    right,
			})
		}
	}

	summary := Summary{
		Sheet:     sheet,
		LeftRows:  pair.LeftShape.Rows,
		RightRows: pair.RightShape.Rows,
		LeftCols:  pair.LeftShape.Cols,
		RightCols: pair.RightShape.Cols,
		DiffCount: len(records),
	}
	return records, summary
}
