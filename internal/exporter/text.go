package exporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"upstreamcli/pkg/contracts/domain"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	headingColor = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.FgYellow)
)

// WriteReportText renders rep for a terminal. Notes of suppressed sections
// appear in place of their table.
func WriteReportText(out io.Writer, rep *domain.Report) error {
	if _, err := titleColor.Fprintln(out, rep.Title); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %s\n", domain.LabelLote, rep.Lote)

	for _, group := range rep.Families {
		if group.Rendered() {
			fmt.Fprintln(out)
			headingColor.Fprintf(out, "• %s\n", group.Heading)
		}

		for _, s := range group.Sections {
			fmt.Fprintln(out)
			if s.Suppressed {
				noteColor.Fprintln(out, s.Note)
				continue
			}
			fmt.Fprintln(out, s.Title)
			renderTable(out, sectionRows(s))
		}
	}

	return nil
}

func renderTable(out io.Writer, t domain.FormattedTable) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(t.Header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(t.Rows)
	table.Render()
}
