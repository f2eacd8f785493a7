package domain

import (
	"time"
)

// Family groups report sections by metric.
type Family string

const (
	FamilyReserves   Family = "reserves"
	FamilyProduction Family = "production"
	FamilyInvestment Family = "investment"
	FamilyRoyalty    Family = "royalty"
	FamilyFee        Family = "fee"
)

// Families returns the metric families in report order.
func Families() []Family {
	return []Family{FamilyReserves, FamilyProduction, FamilyInvestment, FamilyRoyalty, FamilyFee}
}

// TableKind describes how a table is laid out.
type TableKind string

const (
	// TableByClassification has one row per reserve/resource class and
	// Volumen, País and %Participación columns.
	TableByClassification TableKind = "classification"
	// TableByYear has Lote, País and %Participación rows and one column per year.
	TableByYear TableKind = "year"
)

// Fixed row labels of year tables.
const (
	LabelLote    = "Lote"
	LabelCountry = "País"
	LabelShare   = "%Participación"
	LabelClass   = "Clasificación"
	LabelVolume  = "Volumen"
)

// AggregateRow holds one label's unit value, national value and share.
type AggregateRow struct {
	Label    string  `json:"label"`
	Unit     float64 `json:"unit"`
	National float64 `json:"national"`
	Percent  float64 `json:"percent"`
}

// Table is a computed, not yet formatted section table.
// For TableByYear, Years lists the column years and Rows holds one entry per
// year, in the same order.
type Table struct {
	Kind  TableKind      `json:"kind"`
	Years []int          `json:"years,omitempty"`
	Rows  []AggregateRow `json:"rows"`
}

// Section is one titled table of the report.
type Section struct {
	ID         string          `json:"id"`
	Family     Family          `json:"family"`
	Type       HydrocarbonType `json:"type,omitempty"`
	Title      string          `json:"title"`
	Table      *Table          `json:"table,omitempty"`
	Suppressed bool            `json:"suppressed"`
	Note       string          `json:"note,omitempty"`
}

// FamilyGroup is a family heading and its sections.
type FamilyGroup struct {
	Family   Family    `json:"family"`
	Heading  string    `json:"heading"`
	Sections []Section `json:"sections"`
}

// Rendered reports whether at least one section of the group has a table.
func (g FamilyGroup) Rendered() bool {
	for _, s := range g.Sections {
		if !s.Suppressed {
			return true
		}
	}
	return false
}

// Report is the full output for one lote.
type Report struct {
	Lote        string        `json:"lote"`
	Title       string        `json:"title"`
	GeneratedAt time.Time     `json:"generated_at"`
	Families    []FamilyGroup `json:"families"`
	Notes       []string      `json:"notes,omitempty"`
}

// RenderedSections returns every non-suppressed section in order.
func (r *Report) RenderedSections() []Section {
	var out []Section
	for _, g := range r.Families {
		for _, s := range g.Sections {
			if !s.Suppressed {
				out = append(out, s)
			}
		}
	}
	return out
}

// Empty reports whether every section was suppressed.
func (r *Report) Empty() bool {
	return len(r.RenderedSections()) == 0
}

// FormattedTable is a table with every cell already rendered as text.
type FormattedTable struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// ReportFormat defines the output format of a report.
type ReportFormat string

const (
	ReportFormatText  ReportFormat = "text"
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatCSV   ReportFormat = "csv"
	ReportFormatExcel ReportFormat = "xlsx"
)
