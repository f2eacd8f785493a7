// Package report assembles the per-lote report: reserves and production for
// each hydrocarbon type, then investment, royalty and fee.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"upstreamcli/internal/aggregator"
	"upstreamcli/internal/dataset"
	apperrors "upstreamcli/internal/errors"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/pkg/contracts/domain"
)

// Title is the heading of every report.
const Title = "Principales Cifras UPSTREAM por Lote - Perú"

// PromptMessage is shown when no lote was entered.
const PromptMessage = "Por favor, ingresa un lote para continuar."

// Builder turns a dataset and a lote into a Report.
type Builder struct {
	agg     *aggregator.Aggregator
	logger  *slog.Logger
	metrics *infrastructure.ReportMetrics
	tracer  trace.Tracer
	now     func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the builder logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMetrics records build and section counts on m.
func WithMetrics(m *infrastructure.ReportMetrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// WithTracer wraps every build in a span.
func WithTracer(t trace.Tracer) Option {
	return func(b *Builder) {
		if t != nil {
			b.tracer = t
		}
	}
}

// WithClock overrides the GeneratedAt clock.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder. A nil aggregator uses the default periods.
func NewBuilder(agg *aggregator.Aggregator, opts ...Option) *Builder {
	if agg == nil {
		agg = aggregator.Default()
	}
	b := &Builder{
		agg:    agg,
		logger: slog.Default(),
		tracer: tracenoop.NewTracerProvider().Tracer("report"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = infrastructure.WithComponent(b.logger, "report")
	return b
}

// Build computes every section for lote. An empty lote yields a
// MISSING_INPUT error; a nil dataset yields a LOAD error.
func (b *Builder) Build(ctx context.Context, ds *dataset.Dataset, lote string) (*domain.Report, error) {
	lote = strings.TrimSpace(lote)

	ctx, span := b.tracer.Start(ctx, "report.Build", trace.WithAttributes(attribute.String("report.lote", lote)))
	defer span.End()

	if ds == nil {
		err := apperrors.NewLoadError("no hay datos cargados", nil)
		b.fail(ctx, span, "load_error", err)
		return nil, err
	}
	if lote == "" {
		err := apperrors.NewMissingInputError("lote", PromptMessage)
		b.metrics.RecordReportBuild(ctx, "missing_input")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rep := &domain.Report{
		Lote:        lote,
		Title:       Title,
		GeneratedAt: b.now(),
	}

	for _, family := range domain.Families() {
		group := domain.FamilyGroup{Family: family, Heading: b.heading(family)}

		for _, def := range sectionsOf(family) {
			if err := ctx.Err(); err != nil {
				b.fail(ctx, span, "cancelled", err)
				return nil, err
			}

			table, err := def.compute(b.agg, ds, lote)
			section := domain.Section{
				ID:     def.id,
				Family: family,
				Type:   def.kind,
				Title:  def.title(lote),
			}
			switch {
			case errors.Is(err, aggregator.ErrEmptySection):
				section.Suppressed = true
				section.Note = def.note(lote)
				rep.Notes = append(rep.Notes, section.Note)
			case err != nil:
				err = fmt.Errorf("section %s: %w", def.id, err)
				b.fail(ctx, span, "error", err)
				return nil, err
			default:
				section.Table = table
			}

			b.metrics.RecordSection(ctx, string(family), section.Suppressed)
			group.Sections = append(group.Sections, section)
		}

		rep.Families = append(rep.Families, group)
	}

	rendered := len(rep.RenderedSections())
	span.SetAttributes(attribute.Int("report.sections_rendered", rendered))
	b.metrics.RecordReportBuild(ctx, "success")
	b.logger.InfoContext(ctx, "report built",
		slog.String("lote", lote),
		slog.Int("sections_rendered", rendered),
		slog.Int("sections_suppressed", len(rep.Notes)))

	return rep, nil
}

func (b *Builder) fail(ctx context.Context, span trace.Span, outcome string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	b.metrics.RecordReportBuild(ctx, outcome)
	b.logger.ErrorContext(ctx, "report build failed", slog.String("error", err.Error()))
}

func (b *Builder) heading(f domain.Family) string {
	switch f {
	case domain.FamilyReserves:
		return fmt.Sprintf("RESERVAS Y RECURSOS DE HIDROCARBUROS (Año %d)", b.agg.ReservesYear())
	case domain.FamilyProduction:
		return "PRODUCCIÓN FISCALIZADA DE HIDROCARBUROS"
	case domain.FamilyInvestment:
		return "INVERSIÓN (MMUSD)"
	case domain.FamilyRoyalty:
		return "REGALÍA (MMUSD)"
	case domain.FamilyFee:
		return "CANON (MMUSD)"
	default:
		return strings.ToUpper(string(f))
	}
}
