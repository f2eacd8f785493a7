package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

// ReportMetrics holds every instrument recorded by the application.
type ReportMetrics struct {
	datasetLoads        metric.Int64Counter
	datasetLoadDuration metric.Float64Histogram
	datasetRecords      metric.Int64Gauge
	reportBuilds        metric.Int64Counter
	reportSections      metric.Int64Counter
	httpRequests        metric.Int64Counter
	httpDuration        metric.Float64Histogram
}

// NewReportMetrics creates the instruments on meter.
func NewReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	m := &ReportMetrics{}
	var err error

	if m.datasetLoads, err = meter.Int64Counter(
		"dataset_loads_total",
		metric.WithDescription("Total number of dataset loads"),
	); err != nil {
		return nil, fmt.Errorf("dataset_loads_total: %w", err)
	}

	if m.datasetLoadDuration, err = meter.Float64Histogram(
		"dataset_load_duration_seconds",
		metric.WithDescription("Dataset load duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("dataset_load_duration_seconds: %w", err)
	}

	if m.datasetRecords, err = meter.Int64Gauge(
		"dataset_records",
		metric.WithDescription("Number of records in the loaded dataset"),
	); err != nil {
		return nil, fmt.Errorf("dataset_records: %w", err)
	}

	if m.reportBuilds, err = meter.Int64Counter(
		"report_builds_total",
		metric.WithDescription("Total number of report builds"),
	); err != nil {
		return nil, fmt.Errorf("report_builds_total: %w", err)
	}

	if m.reportSections, err = meter.Int64Counter(
		"report_sections_total",
		metric.WithDescription("Report sections by family and status"),
	); err != nil {
		return nil, fmt.Errorf("report_sections_total: %w", err)
	}

	if m.httpRequests, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, fmt.Errorf("http_requests_total: %w", err)
	}

	if m.httpDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("http_request_duration_seconds: %w", err)
	}

	return m, nil
}

// NoopReportMetrics returns instruments that record nothing.
func NoopReportMetrics() *ReportMetrics {
	m, _ := NewReportMetrics(metricnoop.NewMeterProvider().Meter(MeterName))
	return m
}

// RecordDatasetLoad records one load attempt.
func (m *ReportMetrics) RecordDatasetLoad(ctx context.Context, source string, records int, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.datasetLoads.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.datasetLoadDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("status", status)))
	if err == nil {
		m.datasetRecords.Record(ctx, int64(records), metric.WithAttributes(attribute.String("source", source)))
	}
}

// RecordReportBuild records one report build.
func (m *ReportMetrics) RecordReportBuild(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.reportBuilds.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordSection records one section, rendered or suppressed.
func (m *ReportMetrics) RecordSection(ctx context.Context, family string, suppressed bool) {
	if m == nil {
		return
	}
	status := "rendered"
	if suppressed {
		status = "suppressed"
	}
	m.reportSections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("family", family),
		attribute.String("status", status),
	))
}

// RecordHTTPRequest records one served request.
func (m *ReportMetrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	m.httpRequests.Add(ctx, 1, attrs)
	m.httpDuration.Record(ctx, d.Seconds(), attrs)
}
