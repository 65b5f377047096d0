package crawl

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/lexicrawl/internal/domain"
)

// renderTallies displays the per-source processing results in a table format.
func renderTallies(tallies []domain.SourceTally, total domain.Tally, outputPath string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "Processed", "Attempted"})
	for _, st := range tallies {
		t.AppendRow(table.Row{st.Source, st.Processed, st.Attempted})
	}
	t.AppendFooter(table.Row{"Total", total.Processed, total.Attempted})

	t.Render()

	if total.Processed > 0 {
		os.Stdout.WriteString("Vocabulary written to " + outputPath + "\n")
	}
}
