package app

import (
	"fmt"
	"log/slog"

	"upstreamcli/internal/aggregator"
	"upstreamcli/internal/config"
	"upstreamcli/internal/dataset"
	"upstreamcli/internal/exporter"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/internal/report"
	"upstreamcli/internal/services"
	"upstreamcli/pkg/contracts"
)

// ServiceContainer holds every service built from one configuration.
type ServiceContainer struct {
	Provider *dataset.Provider
	Builder  *report.Builder
	Exporter *exporter.Exporter
	Report   *services.ReportService
	Health   *services.HealthService
	Metrics  *infrastructure.ReportMetrics
}

// NewServiceContainer builds the services. The CLI and the web server share
// it so both observe the same configuration.
func NewServiceContainer(cfg *config.Config, logger *slog.Logger, providers *infrastructure.OTelProviders) (*ServiceContainer, error) {
	metrics, err := infrastructure.NewReportMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	dataFile, err := config.ResolveDataFile(cfg.Data.File)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data file: %w", err)
	}

	provider := dataset.NewProvider(dataFile,
		dataset.Options{Encoding: cfg.Data.Encoding},
		dataset.WithLogger(logger),
		dataset.WithMetrics(metrics),
		dataset.WithTracer(providers.Tracer),
	)

	builder := report.NewBuilder(
		aggregator.New(cfg.Report.ReservesYear, cfg.Report.ProductionYears),
		report.WithLogger(logger),
		report.WithMetrics(metrics),
		report.WithTracer(providers.Tracer),
	)

	exp := exporter.New(logger)

	return &ServiceContainer{
		Provider: provider,
		Builder:  builder,
		Exporter: exp,
		Report:   services.NewReportService(provider, builder, exp, logger),
		Health:   services.NewHealthService(contracts.Version, contracts.BuildTime, provider, logger),
		Metrics:  metrics,
	}, nil
}
