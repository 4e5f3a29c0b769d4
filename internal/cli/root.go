// Package cli implements the sheetdiff command line interface, the
// recommended path for comparing workbooks too large to push through
// the web form.
package cli

import "github.com/spf13/cobra"

// NewRootCommand creates the root sheetdiff command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheetdiff",
		Short: "Compare two spreadsheet workbooks sheet by sheet",
		Long: `sheetdiff compares two workbooks sheet by sheet and reports
cell-level differences plus a per-sheet summary.

Rows are matched by position, columns by name (sorted union of both
sides). Numeric cells compare within a configurable tolerance; text
cells are whitespace-trimmed and optionally case-folded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCompareCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}
