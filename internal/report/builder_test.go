package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upstreamcli/internal/aggregator"
	"upstreamcli/internal/dataset"
	apperrors "upstreamcli/internal/errors"
	"upstreamcli/internal/infrastructure"
	"upstreamcli/pkg/contracts/domain"
)

func loadFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), "../dataset/testdata/integrado.csv", dataset.Options{})
	require.NoError(t, err)
	return ds
}

func newTestBuilder() *Builder {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewBuilder(aggregator.Default(),
		WithMetrics(infrastructure.NoopReportMetrics()),
		WithClock(func() time.Time { return fixed }))
}

func TestBuild_SectionOrder(t *testing.T) {
	rep, err := newTestBuilder().Build(context.Background(), loadFixture(t), " 88 ")
	require.NoError(t, err)

	assert.Equal(t, "88", rep.Lote)
	assert.Equal(t, Title, rep.Title)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), rep.GeneratedAt)

	var ids []string
	for _, g := range rep.Families {
		for _, s := range g.Sections {
			ids = append(ids, s.ID)
		}
	}
	assert.Equal(t, []string{
		"reserves.petroleo", "reserves.gas", "reserves.lgn",
		"production.petroleo", "production.gas", "production.lgn",
		"investment", "royalty", "fee",
	}, ids)

	assert.Equal(t, "RESERVAS Y RECURSOS DE HIDROCARBUROS (Año 2023)", rep.Families[0].Heading)
	assert.Equal(t, "CANON (MMUSD)", rep.Families[4].Heading)
}

func TestBuild_RenderedAndSuppressed(t *testing.T) {
	rep, err := newTestBuilder().Build(context.Background(), loadFixture(t), "88")
	require.NoError(t, err)

	gas := rep.Families[1].Sections[1]
	assert.Equal(t, "Gas (MMPCD) - Lote: 88", gas.Title)
	require.NotNil(t, gas.Table)
	assert.False(t, gas.Suppressed)
	assert.Equal(t, 20.0, gas.Table.Rows[2].Percent)

	oil := rep.Families[0].Sections[0]
	assert.True(t, oil.Suppressed)
	assert.Nil(t, oil.Table)
	assert.Equal(t, "No hay reservas ni recursos para el lote '88' - Petróleo.", oil.Note)
	assert.Contains(t, rep.Notes, oil.Note)

	for _, g := range rep.Families {
		assert.True(t, g.Rendered(), "family %s has lote data", g.Family)
	}
}

func TestBuild_AbsentLote(t *testing.T) {
	rep, err := newTestBuilder().Build(context.Background(), loadFixture(t), "ZZZ")
	require.NoError(t, err)

	assert.True(t, rep.Empty())
	assert.Len(t, rep.Notes, 9)
	for _, g := range rep.Families {
		assert.False(t, g.Rendered())
	}
	assert.Equal(t, "No hay cánones registrados para el lote 'ZZZ'.", rep.Notes[8])
}

func TestBuild_Errors(t *testing.T) {
	b := newTestBuilder()

	_, err := b.Build(context.Background(), loadFixture(t), "   ")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingInput))

	_, err = b.Build(context.Background(), nil, "88")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.Build(ctx, loadFixture(t), "88")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_InvestmentOnlyFamily(t *testing.T) {
	ds := dataset.New("mem", []domain.Record{
		{Lote: "X", Type: domain.HydrocarbonOil, Year: 2021, Values: [domain.MeasureCount]float64{domain.MeasureInvestment: 3}},
		{Lote: "Y", Type: domain.HydrocarbonOil, Year: 2021, Values: [domain.MeasureCount]float64{domain.MeasureInvestment: 1}},
	})

	rep, err := newTestBuilder().Build(context.Background(), ds, "X")
	require.NoError(t, err)

	rendered := rep.RenderedSections()
	require.Len(t, rendered, 1)
	assert.Equal(t, "investment", rendered[0].ID)
	assert.Equal(t, "Inversión (MMUSD) - Lote: X", rendered[0].Title)
	assert.Equal(t, 75.0, rendered[0].Table.Rows[0].Percent)
	assert.False(t, rep.Families[0].Rendered())
}
