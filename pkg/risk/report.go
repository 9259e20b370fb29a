package risk

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riskforge/gbmsim/pkg/style"
)

// WriteTable renders the report as a labeled table, the shape of the summary
// block the interactive tool prints after a run.
func (r *RiskReport) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewReportTableStyle())
	t.AppendHeader(table.Row{"measure", "value"})
	t.AppendRows([]table.Row{
		{"Start Price", money(r.InitialPrice)},
		{"Expected Future Price", money(r.ExpectedFinalPrice)},
		{"5th Percentile Worst Case", money(r.WorstCase5thPercentile)},
		{"Value at Risk (95%)", money(r.ValueAtRisk95)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Min Final Price", money(r.MinFinalPrice)},
		{"Max Final Price", money(r.MaxFinalPrice)},
	})
	t.Render()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
