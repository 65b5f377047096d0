// Package analyze implements the analyze command for inspecting the
// vocabulary of a local text file.
package analyze

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/lexicrawl/cmd/common"
	"github.com/jonesrussell/lexicrawl/internal/analyzer"
)

// Command returns the analyze command for use in the root command.
func Command() *cobra.Command {
	var topWords int

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze the vocabulary of a local text file",
		Long: `This command runs the French text analyzer over a local file and prints
the top words by frequency with a context sentence for each. Useful for
tuning stopwords and junk patterns without crawling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			return analyzeFile(deps, args[0], topWords)
		},
	}

	cmd.Flags().IntVar(&topWords, "top", 0,
		"How many top words to show (0 means use output.top_words)")

	return cmd
}

// analyzeFile runs the analyzer over one file and renders the results.
func analyzeFile(deps *common.CommandDeps, path string, topWords int) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	an := analyzer.New(nil)
	text, err := an.Validate(string(raw))
	if err != nil {
		return fmt.Errorf("%s is not analyzable: %w", path, err)
	}

	if topWords <= 0 {
		topWords = deps.Config.Output.TopWords
	}
	top, err := an.TopWords(text, topWords)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	words := make([]string, len(top))
	for i, wc := range top {
		words[i] = wc.Word
	}
	contexts := an.ExtractContexts(text, words)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Word", "Count", "Context"})
	for _, wc := range top {
		t.AppendRow(table.Row{wc.Word, wc.Count, contexts[wc.Word]})
	}

	t.Render()
	return nil
}
