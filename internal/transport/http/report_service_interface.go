package http

import (
	"context"
	"io"

	"upstreamcli/internal/services"
	"upstreamcli/pkg/contracts/domain"
)

// ReportServiceInterface defines the report operations used by the handlers
type ReportServiceInterface interface {
	GetReport(ctx context.Context, lote string) (*domain.Report, error)
	ListLotes(ctx context.Context) ([]string, error)
	Export(ctx context.Context, lote string, format domain.ReportFormat, w io.Writer) error
	Reload(ctx context.Context) (services.DatasetInfo, error)
}

// HealthServiceInterface defines the health operations used by the handlers
type HealthServiceInterface interface {
	HealthCheck(ctx context.Context) services.HealthStatus
	ReadinessCheck(ctx context.Context) services.HealthStatus
	LivenessCheck(ctx context.Context) services.HealthStatus
	Version() map[string]interface{}
}
