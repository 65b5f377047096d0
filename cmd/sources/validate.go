package sources

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/lexicrawl/cmd/common"
	"github.com/jonesrussell/lexicrawl/internal/config"
)

// NewValidateCommand creates a new validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the sources file",
		Long: `Validate checks that the sources file parses, that every source has a
unique name, and that every enabled source has a URL and a body selector.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			sources, err := config.LoadSources(deps.Config.SourcesFile)
			if err != nil {
				return fmt.Errorf("sources file is invalid: %w", err)
			}

			enabled := 0
			for _, src := range sources {
				if src.Enabled {
					enabled++
				}
			}

			fmt.Printf("%s: %d sources (%d enabled), all valid\n",
				deps.Config.SourcesFile, len(sources), enabled)
			return nil
		},
	}
}
