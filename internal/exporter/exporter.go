package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"upstreamcli/internal/infrastructure"
	"upstreamcli/pkg/contracts/domain"
)

// Exporter writes reports in any supported format.
type Exporter struct {
	logger *slog.Logger
}

// New creates an Exporter.
func New(logger *slog.Logger) *Exporter {
	return &Exporter{logger: infrastructure.WithComponent(logger, "exporter")}
}

// Write renders rep to out in the given format.
func (e *Exporter) Write(out io.Writer, rep *domain.Report, format domain.ReportFormat) error {
	var err error
	switch format {
	case domain.ReportFormatText, "":
		err = WriteReportText(out, rep)
	case domain.ReportFormatCSV:
		err = WriteReportCSV(out, rep)
	case domain.ReportFormatExcel:
		err = WriteReportXLSX(out, rep)
	case domain.ReportFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(rep)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
	if err != nil {
		e.logger.Error("failed to export report",
			slog.String("lote", rep.Lote),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return fmt.Errorf("export %s: %w", format, err)
	}

	e.logger.Debug("report exported",
		slog.String("lote", rep.Lote),
		slog.String("format", string(format)))
	return nil
}

// ContentType returns the MIME type of format.
func ContentType(format domain.ReportFormat) string {
	switch format {
	case domain.ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case domain.ReportFormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case domain.ReportFormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName returns a download name for a report of lote in format.
func FileName(lote string, format domain.ReportFormat) string {
	ext := string(format)
	if format == domain.ReportFormatText || format == "" {
		ext = "txt"
	}
	return fmt.Sprintf("upstream_lote_%s.%s", sanitize(lote), ext)
}

func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
