package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"upstreamcli/internal/dataset"
	"upstreamcli/internal/exporter"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/internal/report"
	"upstreamcli/pkg/contracts/domain"
)

// DatasetInfo describes the dataset currently in memory.
type DatasetInfo struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Lotes    int       `json:"lotes"`
	LoadedAt time.Time `json:"loaded_at"`
}

func infoOf(ds *dataset.Dataset) DatasetInfo {
	return DatasetInfo{
		Source:   ds.Source(),
		Records:  ds.Len(),
		Lotes:    len(ds.Lotes()),
		LoadedAt: ds.LoadedAt(),
	}
}

// ReportService builds and exports lote reports over the cached dataset.
type ReportService struct {
	provider *dataset.Provider
	builder  *report.Builder
	exporter *exporter.Exporter
	logger   *slog.Logger
}

// NewReportService creates a report service.
func NewReportService(provider *dataset.Provider, builder *report.Builder, exp *exporter.Exporter, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	if exp == nil {
		exp = exporter.New(logger)
	}
	return &ReportService{
		provider: provider,
		builder:  builder,
		exporter: exp,
		logger:   infrastructure.WithComponent(logger, "report_service"),
	}
}

// GetReport builds the report for lote.
func (s *ReportService) GetReport(ctx context.Context, lote string) (*domain.Report, error) {
	ds, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "GetReport: building", slog.String("lote", lote))
	return s.builder.Build(ctx, ds, lote)
}

// ListLotes returns the distinct lotes of the dataset, sorted.
func (s *ReportService) ListLotes(ctx context.Context) ([]string, error) {
	ds, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Lotes(), nil
}

// Export builds the report for lote and writes it to w in format. Nothing
// is written when the build fails.
func (s *ReportService) Export(ctx context.Context, lote string, format domain.ReportFormat, w io.Writer) error {
	switch format {
	case domain.ReportFormatText, domain.ReportFormatJSON, domain.ReportFormatCSV, domain.ReportFormatExcel:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	rep, err := s.GetReport(ctx, lote)
	if err != nil {
		return err
	}
	return s.exporter.Write(w, rep, format)
}

// ExportWorkbook writes the XLSX workbook of lote to w.
func (s *ReportService) ExportWorkbook(ctx context.Context, lote string, w io.Writer) error {
	return s.Export(ctx, lote, domain.ReportFormatExcel, w)
}

// ExportCSV writes the CSV report of lote to w.
func (s *ReportService) ExportCSV(ctx context.Context, lote string, w io.Writer) error {
	return s.Export(ctx, lote, domain.ReportFormatCSV, w)
}

// Reload re-reads the source file. On failure the previous dataset is kept.
func (s *ReportService) Reload(ctx context.Context) (DatasetInfo, error) {
	ds, err := s.provider.Reload(ctx)
	if err != nil {
		return DatasetInfo{}, err
	}

	info := infoOf(ds)
	s.logger.InfoContext(ctx, "dataset reloaded",
		slog.String("source", info.Source),
		slog.Int("records", info.Records))
	return info, nil
}

// DatasetInfo describes the dataset in memory.
func (s *ReportService) DatasetInfo() (DatasetInfo, error) {
	ds := s.provider.Current()
	if ds == nil {
		return DatasetInfo{}, ErrDatasetNotLoaded
	}
	return infoOf(ds), nil
}
