package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewReportTableStyle is the rounded-box style used for the risk report.
// Negative-looking rows stay readable on dark terminals.
func NewReportTableStyle() *table.Style {
	style := table.Style{
		Name:    "RiskReport",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	}
	style.Format.Header = text.FormatTitle
	style.Color.Header = text.Colors{text.FgHiCyan}
	return &style
}
