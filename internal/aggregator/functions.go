package aggregator

import (
	"upstreamcli/internal/dataset"
	"upstreamcli/pkg/contracts/domain"
)

var defaultAggregator = Default()

// Reserves computes the reserves table with the default periods.
func Reserves(ds *dataset.Dataset, lote string, kind domain.HydrocarbonType) (*domain.Table, error) {
	return defaultAggregator.Reserves(ds, lote, kind)
}

// Production computes the production table with the default periods.
func Production(ds *dataset.Dataset, lote string, kind domain.HydrocarbonType) (*domain.Table, error) {
	return defaultAggregator.Production(ds, lote, kind)
}

// Investment computes the investment table with the default periods.
func Investment(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return defaultAggregator.Investment(ds, lote)
}

// Royalty computes the royalty table with the default periods.
func Royalty(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return defaultAggregator.Royalty(ds, lote)
}

// Fee computes the fee table with the default periods.
func Fee(ds *dataset.Dataset, lote string) (*domain.Table, error) {
	return defaultAggregator.Fee(ds, lote)
}
