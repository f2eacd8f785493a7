package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"upstreamcli/internal/dataset"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/pkg/contracts"
)

// DatasetSource is the part of dataset.Provider the health checks use.
type DatasetSource interface {
	Get(ctx context.Context) (*dataset.Dataset, error)
	Path() string
}

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	data      DatasetSource
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a new health service.
func NewHealthService(version, buildTime string, data DatasetSource, logger *slog.Logger) *HealthService {
	logger = infrastructure.WithComponent(logger, "health_service")
	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("build_time", buildTime))

	return &HealthService{
		version:   version,
		buildTime: buildTime,
		data:      data,
		startTime: time.Now(),
		logger:    logger,
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck reports ready once the dataset can be served.
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services:  map[string]interface{}{},
	}

	data := hs.checkDataHealth(ctx)
	status.Services["data"] = data
	if data.Status != "ready" {
		status.Status = "not_ready"
	}

	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	return map[string]interface{}{
		"version":     hs.version,
		"build_time":  hs.buildTime,
		"git_commit":  contracts.GitCommit,
		"api_version": contracts.APIVersion,
		"go_version":  runtime.Version(),
		"os":          runtime.GOOS,
		"arch":        runtime.GOARCH,
		"uptime":      time.Since(hs.startTime).Seconds(),
		"start_time":  hs.startTime.Format(time.RFC3339),
	}
}

func (hs *HealthService) checkDataHealth(ctx context.Context) ServiceHealth {
	if hs.data == nil {
		return ServiceHealth{Status: "not_ready", Message: "no dataset configured"}
	}

	ds, err := hs.data.Get(ctx)
	if err != nil {
		hs.logger.WarnContext(ctx, "dataset not ready",
			slog.String("path", hs.data.Path()),
			slog.String("error", err.Error()))
		return ServiceHealth{Status: "not_ready", Message: err.Error()}
	}

	return ServiceHealth{Status: "ready", Message: ds.Source()}
}
