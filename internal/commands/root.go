// Package commands wires the nairabooks CLI: project scaffolding, manual
// and imported transaction entry, reports, tax summaries and exports.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairabooks/nairabooks/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nairabooks",
		Short:   "Double-entry bookkeeping and Nigerian tax for small businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(),
		newAddCommand(),
		newChatCommand(),
		newImportCommand(),
		newReportCommand(),
		newTaxCommand(),
		newExportCommand(),
	)

	return rootCmd
}
