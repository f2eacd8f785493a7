package domain

// HydrocarbonType identifies the product category of a dataset row.
type HydrocarbonType string

const (
	HydrocarbonOil HydrocarbonType = "Petróleo"
	HydrocarbonGas HydrocarbonType = "Gas"
	HydrocarbonNGL HydrocarbonType = "LGN"
)

// HydrocarbonTypes returns the types in report order.
func HydrocarbonTypes() []HydrocarbonType {
	return []HydrocarbonType{HydrocarbonOil, HydrocarbonGas, HydrocarbonNGL}
}

// ReservesUnit returns the heading used for reserves tables of this type.
func (h HydrocarbonType) ReservesUnit() string {
	switch h {
	case HydrocarbonOil:
		return "Petróleo (MMBBL)"
	case HydrocarbonGas:
		return "Gas (TCF)"
	case HydrocarbonNGL:
		return "LGN (MMBBL)"
	}
	return string(h)
}

// ProductionUnit returns the heading used for production tables of this type.
func (h HydrocarbonType) ProductionUnit() string {
	switch h {
	case HydrocarbonOil:
		return "Petróleo (BPD)"
	case HydrocarbonGas:
		return "Gas (MMPCD)"
	case HydrocarbonNGL:
		return "LGN (BPD)"
	}
	return string(h)
}

// Valid reports whether h is one of the known types.
func (h HydrocarbonType) Valid() bool {
	switch h {
	case HydrocarbonOil, HydrocarbonGas, HydrocarbonNGL:
		return true
	}
	return false
}

// Measure indexes the numeric columns of a Record.
type Measure int

const (
	MeasureProvedP1 Measure = iota
	MeasureProbableP2
	MeasurePossibleP3
	MeasureTotal3P
	MeasureContingent2C
	MeasureProspective2U
	MeasureProduction
	MeasureInvestment
	MeasureRoyalty
	MeasureFee

	MeasureCount
)

var measureColumns = [MeasureCount]string{
	MeasureProvedP1:      "Reservas Probadas (P1)",
	MeasureProbableP2:    "Reservas Probables (P2)",
	MeasurePossibleP3:    "Reservas Posibles (P3)",
	MeasureTotal3P:       "Reservas Totales (3P)",
	MeasureContingent2C:  "Recursos Contingentes (2C)",
	MeasureProspective2U: "Recursos Prospectivos (2U)",
	MeasureProduction:    "Producción",
	MeasureInvestment:    "Inversion",
	MeasureRoyalty:       "Regalia",
	MeasureFee:           "Canon",
}

// Column returns the CSV header of the measure.
func (m Measure) Column() string {
	if m < 0 || m >= MeasureCount {
		return ""
	}
	return measureColumns[m]
}

// Measures returns every numeric measure in column order.
func Measures() []Measure {
	out := make([]Measure, 0, MeasureCount)
	for m := Measure(0); m < MeasureCount; m++ {
		out = append(out, m)
	}
	return out
}

// Source column names for the non-numeric fields.
const (
	ColumnLote = "Lote"
	ColumnType = "Tipo de Hidrocarburo"
	ColumnYear = "Año"
)
