package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sheetops/sheetdiff/internal/diff"
	tbl "github.com/sheetops/sheetdiff/internal/table"
	"github.com/sheetops/sheetdiff/internal/xlsx"
	"github.com/spf13/cobra"
)

type compareFlags struct {
	Sheets     []string
	IgnoreCase bool
	Tolerance  float64
	Output     string
	Quiet      bool
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "compare <left.xlsx> <right.xlsx>",
		Short: "Compare two workbook files and write a differences report",
		Long: `Compare the left and right workbook files sheet by sheet and write
a report workbook containing a "differences" sheet and a "summary"
sheet.

The command exits 0 when the workbooks match, 1 when differences were
found, and 2 on error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.Sheets, "sheets", nil, "sheet names to compare (default: all sheets in either workbook)")
	cmd.Flags().BoolVar(&flags.IgnoreCase, "ignore-case", false, "case-fold text cells before comparing")
	cmd.Flags().Float64Var(&flags.Tolerance, "tolerance", 0, "numeric tolerance for cell equality (non-negative)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", xlsx.FileName, "path for the report workbook")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress the summary table")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, flags compareFlags) error {
	if flags.Tolerance < 0 {
		// Malformed options warn and fall back rather than aborting.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: negative tolerance %v; using 0\n", flags.Tolerance)
		flags.Tolerance = 0
	}

	left, err := parseFile(args[0])
	if err != nil {
		return err
	}
	right, err := parseFile(args[1])
	if err != nil {
		return err
	}

	report, err := diff.Compare(left, right, diff.Options{
		Sheets:     flags.Sheets,
		Tolerance:  flags.Tolerance,
		IgnoreCase: flags.IgnoreCase,
	})
	if err != nil {
		return err
	}

	out, err := xlsx.RenderReport(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flags.Output, out, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !flags.Quiet {
		renderSummary(cmd, report)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d difference(s) found; report written to %s\n",
		report.DiffCount(), flags.Output)

	if report.DiffCount() > 0 {
		os.Exit(1)
	}
	return nil
}

func parseFile(path string) (tbl.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	wb, err := xlsx.ParseWorkbook(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wb, nil
}

// renderSummary prints the per-sheet summary table.
func renderSummary(cmd *cobra.Command, report *diff.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Sheet", "Left Rows", "Right Rows", "Left Cols", "Right Cols", "Diffs", "Note"})

	for _, s := range report.Summaries {
		if s.PresenceOnly() {
			t.AppendRow(table.Row{s.Sheet, "", "", "", "", "", s.Note})
			continue
		}
		t.AppendRow(table.Row{s.Sheet, s.LeftRows, s.RightRows, s.LeftCols, s.RightCols, s.DiffCount, ""})
	}

	t.Render()
}
