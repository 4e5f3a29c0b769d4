package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sheetdiff %s (commit %s, %s)\n",
				Version, Commit, runtime.Version())
		},
	}
}
