package dataset

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"upstreamcli/pkg/contracts/domain"
)

// Dataset is the loaded table. It is never mutated after Load returns.
type Dataset struct {
	source   string
	loadedAt time.Time
	records  []domain.Record
	lotes    []string
}

// New builds a Dataset from already coerced records.
func New(source string, records []domain.Record) *Dataset {
	lotes := lo.Uniq(lo.FilterMap(records, func(r domain.Record, _ int) (string, bool) {
		return r.Lote, r.Lote != ""
	}))
	slices.Sort(lotes)

	return &Dataset{
		source:   source,
		loadedAt: time.Now(),
		records:  slices.Clone(records),
		lotes:    lotes,
	}
}

// Records returns a copy of every record in file order.
func (d *Dataset) Records() []domain.Record {
	return slices.Clone(d.records)
}

// Filter returns the records matching keep, in file order.
func (d *Dataset) Filter(keep func(domain.Record) bool) []domain.Record {
	return lo.Filter(d.records, func(r domain.Record, _ int) bool {
		return keep(r)
	})
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Lotes returns the distinct non-empty units, sorted.
func (d *Dataset) Lotes() []string {
	return slices.Clone(d.lotes)
}

// HasLote reports whether any record belongs to lote.
func (d *Dataset) HasLote(lote string) bool {
	_, found := slices.BinarySearch(d.lotes, lote)
	return found
}

// Source returns the path the dataset was read from.
func (d *Dataset) Source() string {
	return d.source
}

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}
