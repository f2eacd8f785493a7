package report

import (
	"fmt"
	"strings"

	"upstreamcli/internal/aggregator"
	"upstreamcli/internal/dataset"
	"upstreamcli/pkg/contracts/domain"
)

// sectionDef describes how one section is computed and labelled.
type sectionDef struct {
	id      string
	kind    domain.HydrocarbonType
	compute func(a *aggregator.Aggregator, ds *dataset.Dataset, lote string) (*domain.Table, error)
	title   func(lote string) string
	note    func(lote string) string
}

func sectionsOf(f domain.Family) []sectionDef {
	switch f {
	case domain.FamilyReserves:
		return perType(f, func(t domain.HydrocarbonType) sectionDef {
			return sectionDef{
				compute: func(a *aggregator.Aggregator, ds *dataset.Dataset, lote string) (*domain.Table, error) {
					return a.Reserves(ds, lote, t)
				},
				title: titled(t.ReservesUnit()),
				note: func(lote string) string {
					return fmt.Sprintf("No hay reservas ni recursos para el lote '%s' - %s.", lote, t)
				},
			}
		})
	case domain.FamilyProduction:
		return perType(f, func(t domain.HydrocarbonType) sectionDef {
			return sectionDef{
				compute: func(a *aggregator.Aggregator, ds *dataset.Dataset, lote string) (*domain.Table, error) {
					return a.Production(ds, lote, t)
				},
				title: titled(t.ProductionUnit()),
				note: func(lote string) string {
					return fmt.Sprintf("No hay producción registrada para el lote '%s' - %s.", lote, t)
				},
			}
		})
	case domain.FamilyInvestment:
		return []sectionDef{{
			id:      string(f),
			compute: (*aggregator.Aggregator).Investment,
			title:   titled("Inversión (MMUSD)"),
			note:    noted("No hay inversión registrada para el lote '%s'."),
		}}
	case domain.FamilyRoyalty:
		return []sectionDef{{
			id:      string(f),
			compute: (*aggregator.Aggregator).Royalty,
			title:   titled("Regalía (MMUSD)"),
			note:    noted("No hay regalías registradas para el lote '%s'."),
		}}
	case domain.FamilyFee:
		return []sectionDef{{
			id:      string(f),
			compute: (*aggregator.Aggregator).Fee,
			title:   titled("Canon (MMUSD)"),
			note:    noted("No hay cánones registrados para el lote '%s'."),
		}}
	}
	return nil
}

func perType(f domain.Family, build func(domain.HydrocarbonType) sectionDef) []sectionDef {
	defs := make([]sectionDef, 0, len(domain.HydrocarbonTypes()))
	for _, t := range domain.HydrocarbonTypes() {
		def := build(t)
		def.id = string(f) + "." + typeSlug(t)
		def.kind = t
		defs = append(defs, def)
	}
	return defs
}

func titled(unit string) func(string) string {
	return func(lote string) string {
		return fmt.Sprintf("%s - Lote: %s", unit, lote)
	}
}

func noted(format string) func(string) string {
	return func(lote string) string {
		return fmt.Sprintf(format, lote)
	}
}

func typeSlug(t domain.HydrocarbonType) string {
	switch t {
	case domain.HydrocarbonOil:
		return "petroleo"
	case domain.HydrocarbonGas:
		return "gas"
	case domain.HydrocarbonNGL:
		return "lgn"
	}
	return strings.ToLower(string(t))
}
