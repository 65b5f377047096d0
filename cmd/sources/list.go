package sources

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/lexicrawl/cmd/common"
	"github.com/jonesrussell/lexicrawl/internal/config"
)

// renderTable formats and displays the sources in a table format.
func renderTable(sources []config.Source) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Name", "URL", "Enabled", "URL Patterns", "Body Selector"})

	for _, src := range sources {
		t.AppendRow(table.Row{
			src.Name,
			src.URL,
			src.Enabled,
			strings.Join(src.ArticleURLPatterns, ", "),
			src.Selectors.Body,
		})
	}

	t.Render()
}

// NewListCommand creates a new list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured sources",
		Long:  `List all news sources defined in the sources file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			sources, err := config.LoadSources(deps.Config.SourcesFile)
			if err != nil {
				return fmt.Errorf("failed to load sources: %w", err)
			}

			renderTable(sources)
			return nil
		},
	}
}
