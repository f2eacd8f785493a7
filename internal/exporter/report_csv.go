package exporter

import (
	"fmt"
	"io"

	"upstreamcli/pkg/contracts/domain"
)

// WriteReportCSV writes every rendered section as a block: family heading,
// section title, header and rows, followed by an empty line. Notes of
// suppressed sections close the file.
func WriteReportCSV(out io.Writer, rep *domain.Report) error {
	sw, err := NewStreamWriter(out, []string{rep.Title}, true)
	if err != nil {
		return err
	}

	write := func(record ...string) error {
		if err := sw.WriteRecord(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
		return nil
	}

	if err := write(domain.LabelLote, rep.Lote); err != nil {
		return err
	}

	for _, group := range rep.Families {
		if !group.Rendered() {
			continue
		}
		if err := write(""); err != nil {
			return err
		}
		if err := write(group.Heading); err != nil {
			return err
		}
		for _, s := range group.Sections {
			if s.Suppressed {
				continue
			}
			table := sectionRows(s)
			if err := write(s.Title); err != nil {
				return err
			}
			if err := write(table.Header...); err != nil {
				return err
			}
			for _, row := range table.Rows {
				if err := write(row...); err != nil {
					return err
				}
			}
		}
	}

	if len(rep.Notes) > 0 {
		if err := write(""); err != nil {
			return err
		}
		for _, note := range rep.Notes {
			if err := write(note); err != nil {
				return err
			}
		}
	}

	return sw.Flush()
}
