package exporter

import (
	"upstreamcli/internal/formatter"
	"upstreamcli/pkg/contracts/domain"
)

// sectionRows returns the formatted header and rows of a rendered section.
func sectionRows(s domain.Section) domain.FormattedTable {
	if s.Table == nil {
		return domain.FormattedTable{}
	}
	return formatter.FormatTable(*s.Table)
}

// sheetName returns a workbook sheet name for s, at most 31 characters.
func sheetName(s domain.Section) string {
	var name string
	switch s.Family {
	case domain.FamilyReserves:
		name = "Reservas " + string(s.Type)
	case domain.FamilyProduction:
		name = "Producción " + string(s.Type)
	case domain.FamilyInvestment:
		name = "Inversión"
	case domain.FamilyRoyalty:
		name = "Regalía"
	case domain.FamilyFee:
		name = "Canon"
	default:
		name = s.ID
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
