// Package sources implements the command-line interface for inspecting the
// configured news sources.
package sources

import (
	"github.com/spf13/cobra"
)

// Command returns the sources command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage configured news sources",
		Long: `The sources command provides functionality for inspecting the news
sources defined in the sources file.`,
	}

	cmd.AddCommand(
		NewListCommand(),
		NewValidateCommand(),
	)

	return cmd
}
