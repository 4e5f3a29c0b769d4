package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook creates a small xlsx file on disk.
func writeTestWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

// Identical inputs exit zero and still write a report with the
// placeholder differences sheet.
func TestCompareCommandIdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left.xlsx")
	right := filepath.Join(dir, "right.xlsx")
	out := filepath.Join(dir, "report.xlsx")

	rows := [][]any{{"id", "val"}, {1, 5}, {2, 10}}
	writeTestWorkbook(t, left, rows)
	writeTestWorkbook(t, right, rows)

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"compare", left, right, "--output", out, "--quiet"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compare failed: %v (stderr: %s)", err, stderr.String())
	}

	if !strings.Contains(stdout.String(), "0 difference(s) found") {
		t.Errorf("stdout = %q, want zero differences message", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("report does not reopen: %v", err)
	}
	defer f.Close()

	diffRows, err := f.GetRows("differences")
	if err != nil {
		t.Fatalf("read differences sheet: %v", err)
	}
	if len(diffRows) != 2 || diffRows[1][0] != "no differences found" {
		t.Errorf("differences sheet = %v, want placeholder row", diffRows)
	}
}

func TestCompareCommandMissingFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"compare", "/does/not/exist.xlsx", "/also/missing.xlsx"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for missing input files")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "sheetdiff") {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}
