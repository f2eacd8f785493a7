package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/singleflight"

	"upstreamcli/internal/infrastructure"
)

// Provider caches the dataset read from one path. Concurrent callers that
// miss the cache share a single load.
type Provider struct {
	path    string
	opts    Options
	logger  *slog.Logger
	metrics *infrastructure.ReportMetrics
	tracer  trace.Tracer

	group singleflight.Group

	mu      sync.RWMutex
	current *Dataset
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets the provider logger.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records load metrics on m.
func WithMetrics(m *infrastructure.ReportMetrics) ProviderOption {
	return func(p *Provider) { p.metrics = m }
}

// WithTracer wraps every load in a span.
func WithTracer(t trace.Tracer) ProviderOption {
	return func(p *Provider) {
		if t != nil {
			p.tracer = t
		}
	}
}

// NewProvider creates a provider for the file at path. Nothing is read until
// the first Get.
func NewProvider(path string, opts Options, options ...ProviderOption) *Provider {
	p := &Provider{
		path:   path,
		opts:   opts,
		logger: slog.Default(),
		tracer: tracenoop.NewTracerProvider().Tracer("dataset"),
	}
	for _, opt := range options {
		opt(p)
	}
	p.logger = infrastructure.WithComponent(p.logger, "dataset")
	return p
}

// Path returns the file the provider reads.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the cached dataset, loading it on first use.
func (p *Provider) Get(ctx context.Context) (*Dataset, error) {
	if ds := p.Current(); ds != nil {
		return ds, nil
	}
	return p.load(ctx)
}

// Reload discards the cached dataset and reads the file again. On failure
// the previous dataset stays in place.
func (p *Provider) Reload(ctx context.Context) (*Dataset, error) {
	return p.load(ctx)
}

// Current returns the cached dataset or nil.
func (p *Provider) Current() *Dataset {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Provider) load(ctx context.Context) (*Dataset, error) {
	v, err, shared := p.group.Do(p.path, func() (interface{}, error) {
		return p.read(ctx)
	})
	if shared {
		p.logger.DebugContext(ctx, "dataset load shared with concurrent caller")
	}
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

func (p *Provider) read(ctx context.Context) (*Dataset, error) {
	ctx, span := p.tracer.Start(ctx, "dataset.Load",
		trace.WithAttributes(attribute.String("dataset.path", p.path)))
	defer span.End()

	start := time.Now()
	ds, err := Load(ctx, p.path, p.opts)
	elapsed := time.Since(start)

	records := 0
	if ds != nil {
		records = ds.Len()
	}
	p.metrics.RecordDatasetLoad(ctx, p.path, records, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.ErrorContext(ctx, "failed to load dataset",
			slog.String("path", p.path),
			slog.String("error", err.Error()))
		return nil, err
	}

	span.SetAttributes(attribute.Int("dataset.records", records))
	p.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", p.path),
		slog.Int("records", records),
		slog.Int("lotes", len(ds.Lotes())),
		slog.Duration("duration", elapsed))

	p.mu.Lock()
	p.current = ds
	p.mu.Unlock()
	return ds, nil
}
