package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"upstreamcli/pkg/contracts/domain"
)

const (
	notesSheet = "Notas"
	// numFmtThousands is the built-in "#,##0.00" format.
	numFmtThousands = 4
)

// WriteReportXLSX writes rep as a workbook with one sheet per rendered
// section and a Notas sheet. Values stay numeric; the cell style supplies
// the two-decimal thousands format.
func WriteReportXLSX(out io.Writer, rep *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	number, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}

	first := true
	for _, s := range rep.RenderedSections() {
		name := sheetName(s)
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}

		if err := writeSectionSheet(f, name, s, bold, number); err != nil {
			return err
		}
	}

	if first {
		if err := f.SetSheetName("Sheet1", notesSheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	} else if _, err := f.NewSheet(notesSheet); err != nil {
		return fmt.Errorf("failed to create notes sheet: %w", err)
	}
	if err := writeNotesSheet(f, rep, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSectionSheet(f *excelize.File, sheet string, s domain.Section, bold, number int) error {
	if err := f.SetCellValue(sheet, "A1", s.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return err
	}

	header, rows := sheetRows(*s.Table)
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 3)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", last, bold); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, 4+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		from, _ := excelize.CoordinatesToCellName(2, 4+i)
		to, _ := excelize.CoordinatesToCellName(len(row), 4+i)
		if err := f.SetCellStyle(sheet, from, to, number); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "A", 26)
}

// sheetRows lays a table out like FormatTable but keeps numbers numeric.
func sheetRows(t domain.Table) ([]interface{}, [][]interface{}) {
	if t.Kind == domain.TableByYear {
		header := []interface{}{domain.LabelClass}
		unit := []interface{}{domain.LabelLote}
		national := []interface{}{domain.LabelCountry}
		share := []interface{}{domain.LabelShare}
		for i, r := range t.Rows {
			if i < len(t.Years) {
				header = append(header, t.Years[i])
			} else {
				header = append(header, r.Label)
			}
			unit = append(unit, r.Unit)
			national = append(national, r.National)
			share = append(share, r.Percent)
		}
		return header, [][]interface{}{unit, national, share}
	}

	header := []interface{}{domain.LabelClass, domain.LabelVolume, domain.LabelCountry, domain.LabelShare}
	rows := make([][]interface{}, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []interface{}{r.Label, r.Unit, r.National, r.Percent})
	}
	return header, rows
}

func writeNotesSheet(f *excelize.File, rep *domain.Report, bold int) error {
	if err := f.SetCellValue(notesSheet, "A1", rep.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(notesSheet, "A1", "A1", bold); err != nil {
		return err
	}
	if err := f.SetSheetRow(notesSheet, "A2", &[]interface{}{domain.LabelLote, rep.Lote}); err != nil {
		return err
	}
	if err := f.SetSheetRow(notesSheet, "A3", &[]interface{}{"Generado", rep.GeneratedAt.Format("2006-01-02 15:04:05")}); err != nil {
		return err
	}
	for i, note := range rep.Notes {
		cell, err := excelize.CoordinatesToCellName(1, 5+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(notesSheet, cell, note); err != nil {
			return err
		}
	}
	return f.SetColWidth(notesSheet, "A", "A", 60)
}
