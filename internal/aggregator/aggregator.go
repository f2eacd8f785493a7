// Package aggregator compares one lote against national totals. Every
// operation filters the dataset, sums a measure and derives the lote's share.
package aggregator

import (
	"errors"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"upstreamcli/internal/dataset"
	"upstreamcli/pkg/contracts/domain"
)

// ErrEmptySection means every lote-side value of a table is zero. It is a
// "no data" signal, not a failure.
var ErrEmptySection = errors.New("aggregator: section has no data for the lote")

const (
	DefaultReservesYear = 2023
	// reservesScale converts stored reserve volumes to report units.
	reservesScale = 1000
)

// DefaultProductionYears are the year columns of every year table.
var DefaultProductionYears = []int{2021, 2022, 2023, 2024, 2025}

// reserveClasses lists the classification rows in report order.
var reserveClasses = []struct {
	measure domain.Measure
	label   string
}{
	{domain.MeasureProvedP1, "P1"},
	{domain.MeasureProbableP2, "P2"},
	{domain.MeasurePossibleP3, "P3"},
	{domain.MeasureTotal3P, "Reservas Totales (3P)"},
	{domain.MeasureContingent2C, "2C"},
	{domain.MeasureProspective2U, "2U"},
}

// Aggregator computes section tables for a fixed reserves year and set of
// production years.
type Aggregator struct {
	reservesYear int
	years        []int
}

// New returns an Aggregator. Zero values fall back to the defaults.
func New(reservesYear int, years []int) *Aggregator {
	if reservesYear == 0 {
		reservesYear = DefaultReservesYear
	}
	if len(years) == 0 {
		years = DefaultProductionYears
	}
	return &Aggregator{reservesYear: reservesYear, years: slices.Clone(years)}
}

// Default returns an Aggregator with the default periods.
func Default() *Aggregator {
	return New(DefaultReservesYear, DefaultProductionYears)
}

// ReservesYear returns the year reserves are reported for.
func (a *Aggregator) ReservesYear() int {
	return a.reservesYear
}

// Years returns the year columns of year tables.
func (a *Aggregator) Years() []int {
	return slices.Clone(a.years)
}

// Reserves builds the classification table of one hydrocarbon type for the
// reserves year. Volumes are divided by 1000 and rounded before the share is
// taken from the rounded values.
func (a *Aggregator) Reserves(ds *dataset.Dataset, lote string, kind domain.HydrocarbonType) (*domain.Table, error) {
	national := ds.Filter(func(r domain.Record) bool {
		return r.Year == a.reservesYear && r.Type == kind
	})
	unit := lo.Filter(national, func(r domain.Record, _ int) bool {
		return r.Lote == lote
	})

	rows := make([]domain.AggregateRow, 0, len(reserveClasses))
	for _, class := range reserveClasses {
		u := Round2(sum(unit, class.measure) / reservesScale)
		n := Round2(sum(national, class.measure) / reservesScale)
		rows = append(rows, domain.AggregateRow{
			Label:    class.label,
			Unit:     u,
			National: n,
			Percent:  share(u, n),
		})
	}

	if allUnitZero(rows) {
		return nil, ErrEmptySection
	}
	return &domain.Table{Kind: domain.TableByClassification, Rows: rows}, nil
}

// Production builds the per-year production table of one hydrocarbon type.
func (a *Aggregator) Production(ds *dataset.Dataset, lote string, kind domain.HydrocarbonType) (*domain.Table, error) {
	return a.byYear(ds, lote, domain.MeasureProduction, func(r domain.Record) bool {
		return r.Type == kind
	})
}

// Investment builds the per-year investment table across all types.
func (a *Aggregator) Investment(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return a.byYear(ds, lote, domain.MeasureInvestment, nil)
}

// Royalty builds the per-year royalty table across all types.
func (a *Aggregator) Royalty(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return a.byYear(ds, lote, domain.MeasureRoyalty, nil)
}

// Fee builds the per-year fee table across all types.
func (a *Aggregator) Fee(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return a.byYear(ds, lote, domain.MeasureFee, nil)
}

// byYear sums measure per year. The share is taken from the unrounded sums.
func (a *Aggregator) byYear(ds *dataset.Dataset, lote string, measure domain.Measure, keep func(domain.Record) bool) (*domain.Table, error) {
	records := ds.Filter(func(r domain.Record) bool {
		return slices.Contains(a.years, r.Year) && (keep == nil || keep(r))
	})
	byYear := lo.GroupBy(records, func(r domain.Record) int { return r.Year })

	rows := make([]domain.AggregateRow, 0, len(a.years))
	for _, year := range a.years {
		national := byYear[year]
		unit := lo.Filter(national, func(r domain.Record, _ int) bool {
			return r.Lote == lote
		})

		u := sum(unit, measure)
		n := sum(national, measure)
		rows = append(rows, domain.AggregateRow{
			Label:    strconv.Itoa(year),
			Unit:     Round2(u),
			National: Round2(n),
			Percent:  share(u, n),
		})
	}

	if allUnitZero(rows) {
		return nil, ErrEmptySection
	}
	return &domain.Table{Kind: domain.TableByYear, Years: a.Years(), Rows: rows}, nil
}

// Round2 rounds half to even at two decimals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(2).InexactFloat64()
}

// share returns unit as a rounded percentage of national, or 0 when the
// national value is not positive.
func share(unit, national float64) float64 {
	if national <= 0 {
		return 0
	}
	return Round2(unit / national * 100)
}

func sum(records []domain.Record, m domain.Measure) float64 {
	return lo.SumBy(records, func(r domain.Record) float64 { return r.Value(m) })
}

func allUnitZero(rows []domain.AggregateRow) bool {
	return lo.EveryBy(rows, func(r domain.AggregateRow) bool { return r.Unit == 0 })
}
