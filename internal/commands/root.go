package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomasbukis-maker/TMS-NEW-sub001/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tms",
		Short:   "Bank-statement reconciliation against open invoices",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newConfirmCommand())

	return rootCmd
}
