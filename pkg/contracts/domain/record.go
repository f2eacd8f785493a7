package domain

// Record is one normalized row of the source table.
// Values are always finite and non-negative once loaded.
type Record struct {
	Lote   string                `json:"lote"`
	Type   HydrocarbonType       `json:"type"`
	Year   int                   `json:"year"`
	Values [MeasureCount]float64 `json:"values"`
}

// Value returns the measure value of the record.
func (r Record) Value(m Measure) float64 {
	if m < 0 || m >= MeasureCount {
		return 0
	}
	return r.Values[m]
}
